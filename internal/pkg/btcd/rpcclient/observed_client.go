// Package rpcclient instruments the btcd node client with operation metrics.
package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Client is the subset of *rpcclient.Client the indexer calls.
	Client interface {
		GetBlockCount() (int64, error)
		GetRawMempool() ([]*chainhash.Hash, error)
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
		SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (*chainhash.Hash, error)
	}
)

var _ Client = (*rpcclient.Client)(nil)

type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

func (r *ObservedClient) GetRawMempool() (hashes []*chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_mempool", err, started)
	}()
	return r.client.GetRawMempool()
}

func (r *ObservedClient) GetRawTransaction(txHash *chainhash.Hash) (tx *btcutil.Tx, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction", err, started)
	}()
	return r.client.GetRawTransaction(txHash)
}

func (r *ObservedClient) SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_raw_transaction", err, started)
	}()
	return r.client.SendRawTransaction(tx, allowHighFees)
}
