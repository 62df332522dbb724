package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "index_block_total",
		Help:      "Count of blocks written to the index.",
	}, []string{"coin", "network", "status"})

	indexBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "index_block_duration_seconds",
		Help:      "Duration of writing one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	indexTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "transactions_total",
		Help:      "Count of transactions written to the index.",
	}, []string{"coin", "network"})

	indexTxosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "txos_total",
		Help:      "Count of address txo records written to the index.",
	}, []string{"coin", "network"})

	indexRollbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "rollback_total",
		Help:      "Count of replaced blocks rolled back.",
	}, []string{"coin", "network", "status"})

	indexRollbackRecords = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "rollback_records",
		Help:      "Number of txo and spent records removed per rollback.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"coin", "network"})
)

// Indexer tracks metrics for index writes.
type Indexer struct {
	coin    model.Coin
	network model.Network
}

// NewIndexer constructs an Indexer with defaults.
func NewIndexer(coin model.Coin, network model.Network) *Indexer {
	coin, network = labels(coin, network)
	return &Indexer{coin: coin, network: network}
}

// ObserveIndexBlock records a block write.
func (m Indexer) ObserveIndexBlock(err error, txs, txos int, started time.Time) {
	s := status(err)
	indexBlockTotal.WithLabelValues(string(m.coin), string(m.network), s).Inc()
	indexBlockDuration.WithLabelValues(string(m.coin), string(m.network), s).
		Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	indexTransactionsTotal.WithLabelValues(string(m.coin), string(m.network)).Add(float64(txs))
	indexTxosTotal.WithLabelValues(string(m.coin), string(m.network)).Add(float64(txos))
}

// ObserveRollback records the rollback of a replaced block.
func (m Indexer) ObserveRollback(err error, records int, _ time.Time) {
	indexRollbackTotal.WithLabelValues(string(m.coin), string(m.network), status(err)).Inc()
	indexRollbackRecords.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(records))
}
