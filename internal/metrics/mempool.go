package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mempoolPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "poll_total",
		Help:      "Count of node mempool polls.",
	}, []string{"coin", "network", "status"})

	mempoolPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "poll_duration_seconds",
		Help:      "Duration of one mempool poll.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	mempoolChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "changes_total",
		Help:      "Count of transactions added to or dropped from the view.",
	}, []string{"coin", "network", "change"})

	mempoolSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "transactions",
		Help:      "Unconfirmed transactions currently tracked.",
	}, []string{"coin", "network"})
)

// Mempool tracks metrics for the mempool monitor.
type Mempool struct {
	coin    model.Coin
	network model.Network
}

// NewMempool constructs a Mempool with defaults.
func NewMempool(coin model.Coin, network model.Network) *Mempool {
	coin, network = labels(coin, network)
	return &Mempool{coin: coin, network: network}
}

// ObservePoll records a poll outcome and the view changes it made.
func (m Mempool) ObservePoll(err error, added, removed int, started time.Time) {
	s := status(err)
	mempoolPollTotal.WithLabelValues(string(m.coin), string(m.network), s).Inc()
	mempoolPollDuration.WithLabelValues(string(m.coin), string(m.network), s).
		Observe(time.Since(started).Seconds())
	mempoolChangesTotal.WithLabelValues(string(m.coin), string(m.network), "added").Add(float64(added))
	mempoolChangesTotal.WithLabelValues(string(m.coin), string(m.network), "removed").Add(float64(removed))
}

// ObserveSize records the number of tracked transactions.
func (m Mempool) ObserveSize(transactions int) {
	mempoolSize.WithLabelValues(string(m.coin), string(m.network)).Set(float64(transactions))
}
