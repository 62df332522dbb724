package mempool

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	AddressResolver interface {
		Addresses(pkScript []byte) []string
	}
	RPCClient interface {
		GetRawMempool() ([]*chainhash.Hash, error)
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
	}
	MonitorMetrics interface {
		ObservePoll(err error, added, removed int, started time.Time)
		ObserveSize(transactions int)
	}
)
