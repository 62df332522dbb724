package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Count of index store operations.",
	}, []string{"operation", "engine", "coin", "network", "status"})
	storeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of index store operations.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "engine", "coin", "network", "status"})
)

// Store tracks metrics for index store operations.
type Store struct {
	engine  string
	coin    model.Coin
	network model.Network
}

// NewStore creates a Store metrics collector for the named engine.
func NewStore(engine string, coin model.Coin, network model.Network) *Store {
	coin, network = labels(coin, network)
	if engine == "" {
		engine = "unknown"
	}
	return &Store{engine: engine, coin: coin, network: network}
}

// Observe records duration and status of a store operation.
func (m Store) Observe(operation string, err error, started time.Time) {
	s := status(err)
	storeOperationsTotal.WithLabelValues(operation, m.engine, string(m.coin), string(m.network), s).Inc()
	storeOperationDuration.WithLabelValues(operation, m.engine, string(m.coin), string(m.network), s).
		Observe(time.Since(started).Seconds())
}
