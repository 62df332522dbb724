package query

import "github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Mempool interface {
		OutpointSpend(txHash string, outputIndex uint32) (string, bool)
		UnconfirmedOutputs(address string) []model.AddressTxo
	}
	BlockReader interface {
		ReadBlock(path string, offset int64, height uint64, headerOnly bool) (model.Block, error)
	}
)
