package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainScanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_builder",
		Name:      "scan_total",
		Help:      "Count of block file scans.",
	}, []string{"coin", "network", "status"})

	chainScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_builder",
		Name:      "scan_duration_seconds",
		Help:      "Duration of scanning every block file.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"coin", "network", "status"})

	chainCandidates = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain_builder",
		Name:      "candidates",
		Help:      "Distinct block candidates found by the last scan.",
	}, []string{"coin", "network"})

	chainBlockFiles = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain_builder",
		Name:      "block_files",
		Help:      "Block files read by the last scan.",
	}, []string{"coin", "network"})

	chainBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_builder",
		Name:      "blocks_total",
		Help:      "Count of blocks read and handed to the indexer.",
	}, []string{"coin", "network", "status"})

	chainBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_builder",
		Name:      "block_duration_seconds",
		Help:      "Duration of reading and indexing one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	chainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain_builder",
		Name:      "height",
		Help:      "Height of the last block handed to the indexer.",
	}, []string{"coin", "network"})
)

// ChainBuilder tracks metrics for indexing passes.
type ChainBuilder struct {
	coin    model.Coin
	network model.Network
}

// NewChainBuilder constructs a ChainBuilder with defaults.
func NewChainBuilder(coin model.Coin, network model.Network) *ChainBuilder {
	coin, network = labels(coin, network)
	return &ChainBuilder{coin: coin, network: network}
}

// ObserveScan records the scan of every block file.
func (m ChainBuilder) ObserveScan(err error, files, candidates int, started time.Time) {
	s := status(err)
	chainScanTotal.WithLabelValues(string(m.coin), string(m.network), s).Inc()
	chainScanDuration.WithLabelValues(string(m.coin), string(m.network), s).
		Observe(time.Since(started).Seconds())
	chainBlockFiles.WithLabelValues(string(m.coin), string(m.network)).Set(float64(files))
	chainCandidates.WithLabelValues(string(m.coin), string(m.network)).Set(float64(candidates))
}

// ObserveBlock records one block of the chain walk.
func (m ChainBuilder) ObserveBlock(err error, height uint64, started time.Time) {
	s := status(err)
	chainBlocksTotal.WithLabelValues(string(m.coin), string(m.network), s).Inc()
	chainBlockDuration.WithLabelValues(string(m.coin), string(m.network), s).
		Observe(time.Since(started).Seconds())
	if err == nil {
		chainHeight.WithLabelValues(string(m.coin), string(m.network)).Set(float64(height))
	}
}
