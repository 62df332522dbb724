// Package index persists decoded blocks into the ordered key space read by the query layer.
package index

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/script"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/storage"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

// Indexer is the only writer of the store.
type Indexer struct {
	logger   *zap.Logger
	store    storage.Store
	resolver ScriptResolver
	mempool  MempoolNotifier
	metrics  Metrics
	workers  int

	mu sync.Mutex
	// nextSeq caches the next txo sequence per key prefix. Entries are loaded
	// from the store on first use and advanced in memory afterwards.
	nextSeq map[string]uint64
}

// NewIndexer constructs an Indexer.
func NewIndexer(
	store storage.Store,
	resolver ScriptResolver,
	mempool MempoolNotifier,
	metrics Metrics,
	logger *zap.Logger,
) (*Indexer, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if resolver == nil {
		return nil, errors.New("script resolver is required")
	}
	if mempool == nil {
		return nil, errors.New("mempool notifier is required")
	}
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	return &Indexer{
		logger:   logger.Named("indexer"),
		store:    store,
		resolver: resolver,
		mempool:  mempool,
		metrics:  metrics,
		workers:  defaultResolveWorkers,
		nextSeq:  make(map[string]uint64),
	}, nil
}

// HasIndexedBlock reports whether hash is stored at height.
func (i *Indexer) HasIndexedBlock(hash string, height uint64) (bool, error) {
	stored, err := i.storedHash(height)
	if err != nil {
		return false, err
	}
	return stored == hash, nil
}

// IndexBlock writes block at block.Height. Re-indexing the stored block is a no-op;
// a different stored block is rolled back in the same batch.
func (i *Indexer) IndexBlock(ctx context.Context, block model.Block) (err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	stored, err := i.storedHash(block.Height)
	if err != nil {
		return err
	}
	if stored == block.Hash {
		return nil
	}

	started := time.Now()
	var txos int
	defer func() {
		i.metrics.ObserveIndexBlock(err, len(block.Transactions), txos, started)
	}()

	resolutions, err := i.resolveOutputs(ctx, block)
	if err != nil {
		return fmt.Errorf("resolve outputs of block %s: %w", block.Hash, err)
	}

	batch := i.store.NewBatch()
	defer func() {
		_ = batch.Close()
	}()
	if stored != "" {
		if err = i.rollback(batch, stored); err != nil {
			i.resetSequences()
			return fmt.Errorf("rollback block %s at height %d: %w", stored, block.Height, err)
		}
		i.logger.Info("replacing block",
			zap.Uint64("height", block.Height),
			zap.String("old", stored),
			zap.String("new", block.Hash),
		)
	}

	txos, err = i.writeBlock(batch, block, resolutions)
	if err != nil {
		i.resetSequences()
		return fmt.Errorf("write block %s: %w", block.Hash, err)
	}
	if err = batch.Commit(); err != nil {
		i.resetSequences()
		return fmt.Errorf("commit block %s: %w", block.Hash, err)
	}

	for _, tx := range block.Transactions {
		i.mempool.TransactionIndexed(tx.Hash)
	}
	return nil
}

func (i *Indexer) storedHash(height uint64) (string, error) {
	v, err := i.store.Get(BlockKey(height))
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get block at height %d: %w", height, err)
	}
	return string(v), nil
}

type outputRef struct {
	tx, out int
}

func (i *Indexer) resolveOutputs(ctx context.Context, block model.Block) ([][]script.Resolution, error) {
	var refs []outputRef
	resolutions := make([][]script.Resolution, len(block.Transactions))
	for t, tx := range block.Transactions {
		resolutions[t] = make([]script.Resolution, len(tx.Outputs))
		for o := range tx.Outputs {
			refs = append(refs, outputRef{tx: t, out: o})
		}
	}

	resolved, err := workerpool.Map(ctx, i.workers, refs, func(_ context.Context, ref outputRef) (script.Resolution, error) {
		return i.resolver.Resolve(block.Transactions[ref.tx].Outputs[ref.out].Script), nil
	})
	if err != nil {
		return nil, err
	}
	for n, ref := range refs {
		resolutions[ref.tx][ref.out] = resolved[n]
	}
	return resolutions, nil
}

func (i *Indexer) writeBlock(batch storage.Batch, block model.Block, resolutions [][]script.Resolution) (int, error) {
	height := block.Height
	file := filepath.Base(block.SourceFile)
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return 0, fmt.Errorf("transaction count: %w", err)
	}

	batch.Put(BlockKey(height), []byte(block.Hash))
	batch.Put(BlockHashKey(block.Hash), []byte(Number(height)))
	batch.Put(BlockFilePositionKey(height), FilePosition(file, block.FileOffset))
	batch.Put(BlockTimeKey(height), decimal(uint64(block.Time)))
	batch.Put(BlockSizeKey(height), decimal(uint64(block.ByteSize)))
	batch.Put(BlockTxCountKey(height), decimal(uint64(txCount)))

	txos := 0
	for t, tx := range block.Transactions {
		batch.Put(BlockTxKey(block.Hash, uint64(t)), []byte(tx.Hash))
		batch.Put(TxFilePositionKey(tx.Hash), FilePosition(file, tx.FileOffset))
		batch.Put(TxBlockKey(tx.Hash), []byte(block.Hash))

		for o, out := range tx.Outputs {
			res := resolutions[t][o]
			seen := make(map[string]struct{}, len(res.Addresses))
			for _, addr := range res.Addresses {
				if _, ok := seen[addr]; ok {
					continue
				}
				seen[addr] = struct{}{}

				seq, err := i.next(TxoPrefix(addr))
				if err != nil {
					return 0, err
				}
				key := TxoKey(addr, seq)
				batch.Put(key, Txo(tx.Hash, out.Index, height, out.Value))

				blockSeq, err := i.next(TxoPrefix(block.Hash))
				if err != nil {
					return 0, err
				}
				batch.Put(TxoKey(block.Hash, blockSeq), key)
				txos++
			}
			if res.Multisig != nil {
				batch.Put(MultisigKey(tx.Hash, out.Index), decimal(uint64(res.Multisig.Required)))
			}
		}

		for _, in := range tx.Inputs {
			if in.Coinbase {
				continue
			}
			spent := SpentKey(in.PrevTxHash, in.PrevOutputIndex)
			batch.Put(spent, Spend(block.Hash, tx.Hash))

			seq, err := i.next(BlockSpentPrefix(block.Hash))
			if err != nil {
				return 0, err
			}
			batch.Put(BlockSpentKey(block.Hash, seq), spent)
		}
	}

	highest, err := i.highest()
	if err != nil {
		return 0, err
	}
	if highest == nil || height > *highest {
		batch.Put(HighestBlockKey, []byte(Number(height)))
	}
	return txos, nil
}

// rollback queues deletion of every record written for blockHash. Spent markers
// and transaction records shared by hash are kept when a later block owns them,
// as happens when a transaction moves to a lower height in the new chain.
func (i *Indexer) rollback(batch storage.Batch, blockHash string) (err error) {
	started := time.Now()
	records := 0
	defer func() {
		i.metrics.ObserveRollback(err, records, started)
	}()

	err = storage.IteratePrefix(i.store, TxoPrefix(blockHash), func(key, value []byte) error {
		batch.Delete(value)
		batch.Delete(key)
		records++
		return nil
	})
	if err != nil {
		return fmt.Errorf("txos: %w", err)
	}

	owner := []byte(blockHash + "-")
	err = storage.IteratePrefix(i.store, BlockSpentPrefix(blockHash), func(key, value []byte) error {
		batch.Delete(key)
		marker, err := i.store.Get(value)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("get %s: %w", value, err)
		}
		if bytes.HasPrefix(marker, owner) {
			batch.Delete(value)
			records++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("spent markers: %w", err)
	}

	var txHashes []string
	err = storage.IteratePrefix(i.store, BlockTxPrefix(blockHash), func(key, value []byte) error {
		batch.Delete(key)
		txHashes = append(txHashes, string(value))
		return nil
	})
	if err != nil {
		return fmt.Errorf("transactions: %w", err)
	}
	for _, txHash := range txHashes {
		owned, err := i.ownsTransaction(blockHash, txHash)
		if err != nil {
			return err
		}
		if !owned {
			continue
		}
		batch.Delete(TxFilePositionKey(txHash))
		batch.Delete(TxBlockKey(txHash))
		err = storage.IteratePrefix(i.store, MultisigPrefix(txHash), func(key, _ []byte) error {
			batch.Delete(key)
			return nil
		})
		if err != nil {
			return fmt.Errorf("multisig records: %w", err)
		}
	}
	batch.Delete(BlockHashKey(blockHash))

	delete(i.nextSeq, string(TxoPrefix(blockHash)))
	delete(i.nextSeq, string(BlockSpentPrefix(blockHash)))
	return nil
}

// ownsTransaction reports whether txHash is still recorded as mined in blockHash.
func (i *Indexer) ownsTransaction(blockHash, txHash string) (bool, error) {
	v, err := i.store.Get(TxBlockKey(txHash))
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("owning block of %s: %w", txHash, err)
	}
	return string(v) == blockHash, nil
}

// next returns the next sequence number under prefix.
func (i *Indexer) next(prefix []byte) (uint64, error) {
	key := string(prefix)
	seq, ok := i.nextSeq[key]
	if !ok {
		last, _, err := i.store.Last(prefix)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			seq = firstSequence
		case err != nil:
			return 0, fmt.Errorf("last key under %s: %w", key, err)
		default:
			n, err := ParseNumber(last[len(prefix):])
			if err != nil {
				return 0, fmt.Errorf("sequence of %s: %w", last, err)
			}
			seq = n + 1
		}
	}
	i.nextSeq[key] = seq + 1
	return seq, nil
}

// resetSequences drops the cache after a failed write so it is reloaded from committed state.
func (i *Indexer) resetSequences() {
	i.nextSeq = make(map[string]uint64)
}

func (i *Indexer) highest() (*uint64, error) {
	v, err := i.store.Get(HighestBlockKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get highest block: %w", err)
	}
	n, err := ParseNumber(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
