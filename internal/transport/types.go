package transport

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	QueryService interface {
		Balance(address string) (model.AddressBalance, error)
		AddressTxos(address string, includeUnconfirmed bool) ([]model.AddressTxo, error)
		OutpointSpend(txHash string, outputIndex uint32) (*model.Spend, error)
		BlockByHeight(height uint64) (model.BlockInfo, error)
		TransactionBlock(txHash string) (string, uint64, error)
		HighestBlock() (uint64, bool, error)
	}
	Node interface {
		GetBlockCount() (int64, error)
		SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (*chainhash.Hash, error)
	}
)
