package chain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/blockfile"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/coinparams"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"go.uber.org/zap"
)

const (
	blockFilePattern       = "blk*.dat"
	progressInterval       = 10 * time.Second
	progressBlockThreshold = 10_000
)

// Builder runs indexing passes: scan every block file, then walk the chain from genesis.
type Builder struct {
	logger    *zap.Logger
	params    coinparams.Params
	blocksDir string
	reader    BlockReader
	indexer   Indexer
	metrics   BuilderMetrics
	now       func() time.Time
	scanFile  func(path string, params coinparams.Params, logger *zap.Logger) ([]model.ScannedBlock, error)
}

// NewBuilder constructs a Builder reading block files from blocksDir.
func NewBuilder(
	blocksDir string,
	params coinparams.Params,
	reader BlockReader,
	indexer Indexer,
	metrics BuilderMetrics,
	logger *zap.Logger,
) (*Builder, error) {
	if reader == nil {
		return nil, errors.New("block reader is required")
	}
	if indexer == nil {
		return nil, errors.New("indexer is required")
	}
	if metrics == nil {
		return nil, errors.New("chain builder metrics is required")
	}
	return &Builder{
		logger:    logger.Named("chainBuilder"),
		params:    params,
		blocksDir: blocksDir,
		reader:    reader,
		indexer:   indexer,
		metrics:   metrics,
		now:       time.Now,
		scanFile:  blockfile.ScanFile,
	}, nil
}

// Pass scans the block files and indexes every canonical block not yet in the index.
// It returns the number of blocks written.
func (b *Builder) Pass(ctx context.Context) (int, error) {
	candidates, err := b.Scan(ctx)
	if err != nil {
		return 0, err
	}
	return b.Walk(ctx, candidates)
}

// Scan builds the candidate map from every block file in name order.
func (b *Builder) Scan(ctx context.Context) (candidates *Candidates, err error) {
	started := b.now()
	var files []string
	defer func() {
		size := 0
		if candidates != nil {
			size = candidates.Len()
		}
		b.metrics.ObserveScan(err, len(files), size, started)
	}()

	files, err = BlockFiles(b.blocksDir)
	if err != nil {
		return nil, err
	}

	candidates = NewCandidates()
	for _, path := range files {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		blocks, scanErr := b.scanFile(path, b.params, b.logger)
		if scanErr != nil {
			b.logger.Warn("skip unreadable block file", zap.String("file", path), zap.Error(scanErr))
			continue
		}
		for _, block := range blocks {
			candidates.Add(block)
		}
	}
	b.logger.Info("scanned block files", zap.Int("files", len(files)), zap.Int("candidates", candidates.Len()))
	return candidates, nil
}

// Walk follows the chain from the zero hash and indexes each block in height order.
func (b *Builder) Walk(ctx context.Context, candidates *Candidates) (int, error) {
	var (
		prev         = model.ZeroHash
		height       uint64
		indexed      int
		lastReport   = b.now()
		reportHeight uint64
	)
	for {
		if err := ctx.Err(); err != nil {
			return indexed, err
		}
		next, ok := candidates.ResolveNext(prev)
		if !ok {
			break
		}

		wrote, err := b.indexHeight(ctx, next, height)
		if err != nil {
			return indexed, fmt.Errorf("index height %d: %w", height, err)
		}
		if wrote {
			indexed++
		}

		if now := b.now(); now.Sub(lastReport) >= progressInterval || height-reportHeight >= progressBlockThreshold {
			b.logger.Info("indexing progress",
				zap.Uint64("height", height),
				zap.String("hash", next.Hash),
				zap.Int("indexed", indexed),
			)
			lastReport = now
			reportHeight = height
		}

		prev = next.Hash
		height++
	}

	if height > 0 {
		b.logger.Info("reached chain tip", zap.Uint64("height", height-1), zap.String("hash", prev), zap.Int("indexed", indexed))
	}
	return indexed, nil
}

func (b *Builder) indexHeight(ctx context.Context, scanned model.ScannedBlock, height uint64) (bool, error) {
	has, err := b.indexer.HasIndexedBlock(scanned.Hash, height)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}

	started := b.now()
	block, err := b.reader.ReadBlock(scanned.SourceFile, scanned.FileOffset, height, false)
	if err == nil {
		err = b.indexer.IndexBlock(ctx, block)
	}
	b.metrics.ObserveBlock(err, height, started)
	if err != nil {
		return false, err
	}
	return true, nil
}

// BlockFiles lists the block files in dir sorted by name.
func BlockFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, blockFilePattern))
	if err != nil {
		return nil, fmt.Errorf("list block files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
