package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	watcherPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "pass_total",
		Help:      "Count of indexing passes triggered by block file changes.",
	}, []string{"coin", "network", "status"})

	watcherPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "pass_duration_seconds",
		Help:      "Duration of one indexing pass.",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 900, 1800, 3600, 7200},
	}, []string{"coin", "network", "status"})

	watcherPassBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "pass_blocks",
		Help:      "Number of blocks indexed per pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"coin", "network"})
)

// Watcher tracks metrics for the block file watcher.
type Watcher struct {
	coin    model.Coin
	network model.Network
}

// NewWatcher constructs a Watcher with defaults.
func NewWatcher(coin model.Coin, network model.Network) *Watcher {
	coin, network = labels(coin, network)
	return &Watcher{coin: coin, network: network}
}

// ObservePass records an indexing pass.
func (m Watcher) ObservePass(err error, blocks int, started time.Time) {
	s := status(err)
	watcherPassTotal.WithLabelValues(string(m.coin), string(m.network), s).Inc()
	watcherPassDuration.WithLabelValues(string(m.coin), string(m.network), s).
		Observe(time.Since(started).Seconds())
	watcherPassBlocks.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(blocks))
}
