// Package query answers address, outpoint and block lookups from the index,
// merged with unconfirmed transactions.
package query

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/index"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/storage"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the requested block or transaction is not indexed.
var ErrNotFound = errors.New("not found")

// Service reads the index. It never writes to the store.
type Service struct {
	logger    *zap.Logger
	store     storage.Store
	mempool   Mempool
	reader    BlockReader
	blocksDir string
}

// NewService constructs a Service. Block files are resolved relative to blocksDir.
func NewService(store storage.Store, mempool Mempool, reader BlockReader, blocksDir string, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if mempool == nil {
		return nil, errors.New("mempool is required")
	}
	if reader == nil {
		return nil, errors.New("block reader is required")
	}
	return &Service{
		logger:    logger.Named("query"),
		store:     store,
		mempool:   mempool,
		reader:    reader,
		blocksDir: blocksDir,
	}, nil
}

// Balance sums the outputs paying to address.
func (s *Service) Balance(address string) (model.AddressBalance, error) {
	balance := model.AddressBalance{Address: address}
	txos, err := s.AddressTxos(address, true)
	if err != nil {
		return balance, err
	}
	for _, txo := range txos {
		switch {
		case txo.Unconfirmed:
			if txo.Spend == nil {
				balance.Unconfirmed += txo.Value
			}
		case txo.Spend == nil:
			balance.Confirmed += txo.Value
		case txo.Spend.Unconfirmed:
			balance.Confirmed += txo.Value
			balance.PendingSpent += txo.Value
		}
	}
	return balance, nil
}

// AddressTxos lists the outputs paying to address in indexing order, each with its
// spend when there is one. Unconfirmed outputs follow when includeUnconfirmed is set.
func (s *Service) AddressTxos(address string, includeUnconfirmed bool) ([]model.AddressTxo, error) {
	var txos []model.AddressTxo
	err := storage.IteratePrefix(s.store, index.TxoPrefix(address), func(key, value []byte) error {
		record, err := index.ParseTxo(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		txos = append(txos, model.AddressTxo{
			TxHash:      record.TxHash,
			OutputIndex: record.OutputIndex,
			Height:      record.Height,
			Value:       record.Value,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("address txos of %s: %w", address, err)
	}

	for i := range txos {
		spend, err := s.OutpointSpend(txos[i].TxHash, txos[i].OutputIndex)
		if err != nil {
			return nil, err
		}
		txos[i].Spend = spend
	}

	if !includeUnconfirmed {
		return txos, nil
	}
	// A mined transaction can sit in the mempool view until the monitor drops it.
	for _, txo := range s.mempool.UnconfirmedOutputs(address) {
		mined, err := s.store.Has(index.TxBlockKey(txo.TxHash))
		if err != nil {
			return nil, fmt.Errorf("owning block of %s: %w", txo.TxHash, err)
		}
		if !mined {
			txos = append(txos, txo)
		}
	}
	return txos, nil
}

// OutpointSpend returns the spend of an outpoint, or nil when it is unspent.
// Confirmed spends take precedence over unconfirmed ones.
func (s *Service) OutpointSpend(txHash string, outputIndex uint32) (*model.Spend, error) {
	v, err := s.store.Get(index.SpentKey(txHash, outputIndex))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		if spender, ok := s.mempool.OutpointSpend(txHash, outputIndex); ok {
			return &model.Spend{TxHash: spender, Unconfirmed: true}, nil
		}
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("spent marker of %s:%d: %w", txHash, outputIndex, err)
	}

	blockHash, spender, err := index.ParseSpend(v)
	if err != nil {
		return nil, err
	}
	return &model.Spend{BlockHash: blockHash, TxHash: spender}, nil
}

// BlockByHeight returns the indexed block at height with its header read from the block file.
func (s *Service) BlockByHeight(height uint64) (model.BlockInfo, error) {
	info := model.BlockInfo{Height: height}

	hash, err := s.get(index.BlockKey(height))
	if err != nil {
		return info, fmt.Errorf("block %d: %w", height, err)
	}
	info.Hash = string(hash)

	position, err := s.get(index.BlockFilePositionKey(height))
	if err != nil {
		return info, fmt.Errorf("block %d position: %w", height, err)
	}
	if info.SourceFile, info.FileOffset, err = index.ParseFilePosition(position); err != nil {
		return info, err
	}

	numbers := []struct {
		key []byte
		dst *uint32
	}{
		{key: index.BlockTimeKey(height), dst: &info.Time},
		{key: index.BlockSizeKey(height), dst: &info.ByteSize},
		{key: index.BlockTxCountKey(height), dst: &info.TxCount},
	}
	for _, n := range numbers {
		raw, err := s.get(n.key)
		if err != nil {
			return info, fmt.Errorf("%s: %w", n.key, err)
		}
		v, err := index.ParseNumber(raw)
		if err != nil {
			return info, err
		}
		if *n.dst, err = safe.Uint32(v); err != nil {
			return info, fmt.Errorf("%s: %w", n.key, err)
		}
	}

	header, err := s.reader.ReadBlock(filepath.Join(s.blocksDir, info.SourceFile), info.FileOffset, height, true)
	if err != nil {
		return info, fmt.Errorf("read header of block %d: %w", height, err)
	}
	if header.Hash != info.Hash {
		s.logger.Warn("block file does not match index",
			zap.Uint64("height", height),
			zap.String("indexed", info.Hash),
			zap.String("file", header.Hash),
		)
		return info, fmt.Errorf("block %d: file holds %s, index holds %s", height, header.Hash, info.Hash)
	}
	info.PrevHash = header.PrevHash
	info.MerkleRoot = header.MerkleRoot
	info.Version = header.Version
	info.Bits = header.Bits
	info.Nonce = header.Nonce
	return info, nil
}

// TransactionBlock returns the hash and height of the block holding txHash.
func (s *Service) TransactionBlock(txHash string) (string, uint64, error) {
	blockHash, err := s.get(index.TxBlockKey(txHash))
	if err != nil {
		return "", 0, fmt.Errorf("transaction %s: %w", txHash, err)
	}
	raw, err := s.get(index.BlockHashKey(string(blockHash)))
	if err != nil {
		return "", 0, fmt.Errorf("block %s: %w", blockHash, err)
	}
	height, err := index.ParseNumber(raw)
	if err != nil {
		return "", 0, err
	}
	return string(blockHash), height, nil
}

// HighestBlock returns the greatest indexed height. ok is false for an empty index.
func (s *Service) HighestBlock() (height uint64, ok bool, err error) {
	raw, err := s.get(index.HighestBlockKey)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	height, err = index.ParseNumber(raw)
	if err != nil {
		return 0, false, err
	}
	return height, true, nil
}

func (s *Service) get(key []byte) ([]byte, error) {
	v, err := s.store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return v, err
}
