// Package mempool tracks unconfirmed transactions so queries can merge them with the index.
package mempool

import (
	"sort"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

type entry struct {
	tx model.Transaction
	// addresses[i] holds the addresses output i pays to.
	addresses [][]string
}

// View is the in-memory set of unconfirmed transactions. It is safe for concurrent use.
type View struct {
	resolver AddressResolver

	mu        sync.RWMutex
	txs       map[string]entry
	byAddress map[string]map[string]struct{}
	spends    map[model.Outpoint]string
}

// NewView constructs an empty View.
func NewView(resolver AddressResolver) *View {
	return &View{
		resolver:  resolver,
		txs:       make(map[string]entry),
		byAddress: make(map[string]map[string]struct{}),
		spends:    make(map[model.Outpoint]string),
	}
}

// AddTransaction starts tracking tx. Adding a tracked transaction again is a no-op.
func (v *View) AddTransaction(tx model.Transaction) {
	addresses := make([][]string, len(tx.Outputs))
	for i, out := range tx.Outputs {
		addresses[i] = v.resolver.Addresses(out.Script)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.txs[tx.Hash]; ok {
		return
	}
	v.txs[tx.Hash] = entry{tx: tx, addresses: addresses}
	for _, addrs := range addresses {
		for _, addr := range addrs {
			set, ok := v.byAddress[addr]
			if !ok {
				set = make(map[string]struct{})
				v.byAddress[addr] = set
			}
			set[tx.Hash] = struct{}{}
		}
	}
	for _, in := range tx.Inputs {
		if in.Coinbase {
			continue
		}
		v.spends[model.Outpoint{TxHash: in.PrevTxHash, Index: in.PrevOutputIndex}] = tx.Hash
	}
}

// Remove stops tracking txHash and reports whether it was tracked.
func (v *View) Remove(txHash string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	e, ok := v.txs[txHash]
	if !ok {
		return false
	}
	delete(v.txs, txHash)
	for _, addrs := range e.addresses {
		for _, addr := range addrs {
			set := v.byAddress[addr]
			delete(set, txHash)
			if len(set) == 0 {
				delete(v.byAddress, addr)
			}
		}
	}
	for _, in := range e.tx.Inputs {
		op := model.Outpoint{TxHash: in.PrevTxHash, Index: in.PrevOutputIndex}
		if v.spends[op] == txHash {
			delete(v.spends, op)
		}
	}
	return true
}

// TransactionIndexed evicts a transaction that was confirmed in an indexed block.
func (v *View) TransactionIndexed(txHash string) {
	v.Remove(txHash)
}

func (v *View) Has(txHash string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.txs[txHash]
	return ok
}

func (v *View) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.txs)
}

// TxHashes returns the tracked transaction hashes in ascending order.
func (v *View) TxHashes() []string {
	v.mu.RLock()
	hashes := make([]string, 0, len(v.txs))
	for h := range v.txs {
		hashes = append(hashes, h)
	}
	v.mu.RUnlock()

	sort.Strings(hashes)
	return hashes
}

// OutpointSpend returns the unconfirmed transaction spending the outpoint, if any.
func (v *View) OutpointSpend(txHash string, outputIndex uint32) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	spender, ok := v.spends[model.Outpoint{TxHash: txHash, Index: outputIndex}]
	return spender, ok
}

// UnconfirmedOutputs returns the unconfirmed outputs paying to address, ordered by
// transaction hash and output index.
func (v *View) UnconfirmedOutputs(address string) []model.AddressTxo {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var txos []model.AddressTxo
	for txHash := range v.byAddress[address] {
		e := v.txs[txHash]
		for i, addrs := range e.addresses {
			if !contains(addrs, address) {
				continue
			}
			out := e.tx.Outputs[i]
			txo := model.AddressTxo{
				TxHash:      txHash,
				OutputIndex: out.Index,
				Value:       out.Value,
				Unconfirmed: true,
			}
			if spender, ok := v.spends[model.Outpoint{TxHash: txHash, Index: out.Index}]; ok {
				txo.Spend = &model.Spend{TxHash: spender, Unconfirmed: true}
			}
			txos = append(txos, txo)
		}
	}
	sort.Slice(txos, func(i, j int) bool {
		if txos[i].TxHash != txos[j].TxHash {
			return txos[i].TxHash < txos[j].TxHash
		}
		return txos[i].OutputIndex < txos[j].OutputIndex
	})
	return txos
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
