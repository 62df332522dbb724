package index

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HighestBlockKey holds the greatest height ever indexed.
var HighestBlockKey = []byte("highestblock")

const (
	numberWidth   = 8
	positionWidth = 12
	txHashLength  = 64
)

var errMalformedValue = errors.New("malformed index value")

// Number renders n zero padded to the width used in every key.
func Number(n uint64) string {
	return fmt.Sprintf("%0*d", numberWidth, n)
}

func BlockKey(height uint64) []byte {
	return []byte("block-" + Number(height))
}

func BlockHashKey(hash string) []byte {
	return []byte("block-hash-" + hash)
}

func BlockFilePositionKey(height uint64) []byte {
	return []byte("block-filePosition-" + Number(height))
}

func BlockTimeKey(height uint64) []byte {
	return []byte("block-time-" + Number(height))
}

func BlockSizeKey(height uint64) []byte {
	return []byte("block-size-" + Number(height))
}

func BlockTxCountKey(height uint64) []byte {
	return []byte("block-txcount-" + Number(height))
}

// BlockTxPrefix scopes the ordered transaction list of a block.
func BlockTxPrefix(blockHash string) []byte {
	return []byte("block-" + blockHash + "-tx-")
}

func BlockTxKey(blockHash string, idx uint64) []byte {
	return append(BlockTxPrefix(blockHash), Number(idx)...)
}

func TxFilePositionKey(txHash string) []byte {
	return []byte("tx-filePosition-" + txHash)
}

func TxBlockKey(txHash string) []byte {
	return []byte("tx-" + txHash + "-block")
}

// TxoPrefix scopes the sequential txo list of owner, an address or a block hash.
func TxoPrefix(owner string) []byte {
	return []byte(owner + "-txo-")
}

func TxoKey(owner string, seq uint64) []byte {
	return append(TxoPrefix(owner), Number(seq)...)
}

func SpentKey(txHash string, outputIndex uint32) []byte {
	return []byte("txo-" + txHash + "-" + Number(uint64(outputIndex)) + "-spent")
}

// BlockSpentPrefix scopes the spent markers written by a block.
func BlockSpentPrefix(blockHash string) []byte {
	return []byte(blockHash + "-txospent-")
}

func BlockSpentKey(blockHash string, seq uint64) []byte {
	return append(BlockSpentPrefix(blockHash), Number(seq)...)
}

// MultisigPrefix scopes the multisig policies recorded for the outputs of a transaction.
func MultisigPrefix(txHash string) []byte {
	return []byte("multisigtx-" + txHash + "-")
}

func MultisigKey(txHash string, outputIndex uint32) []byte {
	return append(MultisigPrefix(txHash), Number(uint64(outputIndex))...)
}

// FilePosition is the value of block and transaction position records.
func FilePosition(file string, offset int64) []byte {
	return []byte(fmt.Sprintf("%s%0*d", file, positionWidth, offset))
}

// ParseFilePosition splits a FilePosition value.
func ParseFilePosition(v []byte) (string, int64, error) {
	s := string(v)
	if len(s) <= positionWidth {
		return "", 0, fmt.Errorf("file position %q: %w", s, errMalformedValue)
	}
	offset, err := strconv.ParseInt(s[len(s)-positionWidth:], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("file position %q: %w", s, errMalformedValue)
	}
	return s[:len(s)-positionWidth], offset, nil
}

// Txo is the value of an address txo record.
func Txo(txHash string, outputIndex uint32, height, value uint64) []byte {
	return []byte(txHash + Number(uint64(outputIndex)) + Number(height) + strconv.FormatUint(value, 10))
}

// TxoRecord is a decoded address txo value.
type TxoRecord struct {
	TxHash      string
	OutputIndex uint32
	Height      uint64
	Value       uint64
}

// ParseTxo decodes a Txo value.
func ParseTxo(v []byte) (TxoRecord, error) {
	s := string(v)
	if len(s) <= txHashLength+2*numberWidth {
		return TxoRecord{}, fmt.Errorf("txo %q: %w", s, errMalformedValue)
	}
	rest := s[txHashLength:]
	out, err := strconv.ParseUint(rest[:numberWidth], 10, 32)
	if err != nil {
		return TxoRecord{}, fmt.Errorf("txo output index: %w", errMalformedValue)
	}
	height, err := strconv.ParseUint(rest[numberWidth:2*numberWidth], 10, 64)
	if err != nil {
		return TxoRecord{}, fmt.Errorf("txo height: %w", errMalformedValue)
	}
	value, err := strconv.ParseUint(rest[2*numberWidth:], 10, 64)
	if err != nil {
		return TxoRecord{}, fmt.Errorf("txo value: %w", errMalformedValue)
	}
	return TxoRecord{
		TxHash:      s[:txHashLength],
		OutputIndex: uint32(out),
		Height:      height,
		Value:       value,
	}, nil
}

// Spend is the value of a spent marker.
func Spend(blockHash, spendingTxHash string) []byte {
	return []byte(blockHash + "-" + spendingTxHash)
}

// ParseSpend splits a Spend value into block hash and spending transaction hash.
func ParseSpend(v []byte) (string, string, error) {
	blockHash, txHash, ok := strings.Cut(string(v), "-")
	if !ok || blockHash == "" || txHash == "" {
		return "", "", fmt.Errorf("spend %q: %w", v, errMalformedValue)
	}
	return blockHash, txHash, nil
}

// ParseNumber decodes a decimal record value or the numeric suffix of a key.
func ParseNumber(v []byte) (uint64, error) {
	n, err := strconv.ParseUint(string(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", v, errMalformedValue)
	}
	return n, nil
}

func decimal(n uint64) []byte {
	return []byte(strconv.FormatUint(n, 10))
}
