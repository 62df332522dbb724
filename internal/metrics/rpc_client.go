package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_rpc",
		Name:      "calls_total",
		Help:      "Node RPC calls issued by the mempool monitor and the query server.",
	}, []string{"operation", "coin", "network", "status"})
	nodeCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_rpc",
		Name:      "call_duration_seconds",
		Help:      "Latency of node RPC calls.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "coin", "network"})
)

// RPCClient labels node RPC calls with the indexed coin and network.
type RPCClient struct {
	coin    model.Coin
	network model.Network
}

func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	coin, network = labels(coin, network)
	return &RPCClient{coin: coin, network: network}
}

// Observe counts one call by outcome. Latency is recorded for every outcome under one series.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	nodeCallsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status(err)).Inc()
	nodeCallDuration.WithLabelValues(operation, string(m.coin), string(m.network)).
		Observe(time.Since(started).Seconds())
}
