// Package metrics holds the Prometheus collectors of the indexer.
package metrics

import "github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"

const namespace = "blockinsight7000"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func labels(coin model.Coin, network model.Network) (model.Coin, model.Network) {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return coin, network
}
