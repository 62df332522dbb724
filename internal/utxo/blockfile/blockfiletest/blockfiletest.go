// Package blockfiletest builds block file fixtures for tests.
package blockfiletest

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// MainnetMagic is the on-disk mainnet record delimiter.
var MainnetMagic = [4]byte{0xf9, 0xbe, 0xb4, 0xd9}

// TestnetMagic is the on-disk testnet3 record delimiter.
var TestnetMagic = [4]byte{0x0b, 0x11, 0x09, 0x07}

// Coinbase returns a coinbase transaction paying value to pkScript. tag makes the hash unique.
func Coinbase(tag uint32, value int64, pkScript []byte) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	sigScript := binary.LittleEndian.AppendUint32([]byte{0x04}, tag)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: wire.MaxPrevOutIndex},
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(value, pkScript))
	return tx
}

// Spend returns a transaction spending prev:index into a single output.
func Spend(prev chainhash.Hash, index uint32, value int64, pkScript []byte) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, index), []byte{0x51}, nil))
	tx.AddTxOut(wire.NewTxOut(value, pkScript))
	return tx
}

// Block returns a block on top of prev. nonce distinguishes siblings.
func Block(prev chainhash.Hash, nonce uint32, txs ...*wire.MsgTx) *wire.MsgBlock {
	block := wire.NewMsgBlock(&wire.BlockHeader{
		Version:   1,
		PrevBlock: prev,
		Timestamp: time.Unix(1231006505+int64(nonce), 0),
		Bits:      0x1d00ffff,
		Nonce:     nonce,
	})
	for _, tx := range txs {
		_ = block.AddTransaction(tx)
	}
	hashes := make([]chainhash.Hash, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, tx.TxHash())
	}
	if len(hashes) > 0 {
		block.Header.MerkleRoot = merkleRoot(hashes)
	}
	return block
}

// Chain returns n blocks on top of prev, each paying value to pkScript.
func Chain(prev chainhash.Hash, n int, nonceBase uint32, value int64, pkScript []byte) []*wire.MsgBlock {
	blocks := make([]*wire.MsgBlock, 0, n)
	for i := 0; i < n; i++ {
		nonce := nonceBase + uint32(i)
		block := Block(prev, nonce, Coinbase(nonce, value, pkScript))
		blocks = append(blocks, block)
		prev = block.BlockHash()
	}
	return blocks
}

// Serialize returns the wire encoding of a block including witness data.
func Serialize(t testing.TB, block *wire.MsgBlock) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		t.Fatalf("serialize block: %v", err)
	}
	return buf.Bytes()
}

// SerializeTx returns the wire encoding of a transaction including witness data.
func SerializeTx(t testing.TB, tx *wire.MsgTx) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("serialize tx: %v", err)
	}
	return buf.Bytes()
}

// Record frames a serialized block with magic and size.
func Record(magic [4]byte, raw []byte) []byte {
	out := make([]byte, 0, len(raw)+8)
	out = append(out, magic[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(raw)))
	return append(out, raw...)
}

// WriteFile writes blocks as mainnet records to path and returns the header offset of each.
func WriteFile(t testing.TB, path string, blocks ...*wire.MsgBlock) []int64 {
	t.Helper()
	var (
		buf     []byte
		offsets []int64
	)
	for _, block := range blocks {
		offsets = append(offsets, int64(len(buf))+8)
		buf = append(buf, Record(MainnetMagic, Serialize(t, block))...)
	}
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatalf("write block file: %v", err)
	}
	return offsets
}

func merkleRoot(hashes []chainhash.Hash) chainhash.Hash {
	for len(hashes) > 1 {
		if len(hashes)%2 == 1 {
			hashes = append(hashes, hashes[len(hashes)-1])
		}
		next := make([]chainhash.Hash, 0, len(hashes)/2)
		for i := 0; i < len(hashes); i += 2 {
			var pair [chainhash.HashSize * 2]byte
			copy(pair[:chainhash.HashSize], hashes[i][:])
			copy(pair[chainhash.HashSize:], hashes[i+1][:])
			next = append(next, chainhash.DoubleHashH(pair[:]))
		}
		hashes = next
	}
	return hashes[0]
}
