package index

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/script"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ScriptResolver interface {
		Resolve(pkScript []byte) script.Resolution
	}
	MempoolNotifier interface {
		TransactionIndexed(txHash string)
	}
	Metrics interface {
		ObserveIndexBlock(err error, txs, txos int, started time.Time)
		ObserveRollback(err error, records int, started time.Time)
	}
)
