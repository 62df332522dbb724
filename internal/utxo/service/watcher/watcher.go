// Package watcher runs an indexing pass whenever the node writes to its block files.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"go.uber.org/zap"
)

// Service polls the blocks directory and triggers a Builder pass on changes.
type Service struct {
	logger       *zap.Logger
	blocksDir    string
	builder      Builder
	metrics      WatcherMetrics
	pollInterval time.Duration
	failureSleep time.Duration
	blockSignal  <-chan struct{}
	sleep        func(context.Context, time.Duration, <-chan struct{}) error
	modTime      func(dir string) (time.Time, error)

	// indexedUpTo is the newest block file modification covered by a successful pass.
	indexedUpTo time.Time
}

// NewService builds a watcher Service. A nil blockSignal disables early wakeups.
func NewService(
	blocksDir string,
	builder Builder,
	metrics WatcherMetrics,
	pollInterval time.Duration,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Service, error) {
	if builder == nil {
		return nil, errors.New("chain builder is required")
	}
	if metrics == nil {
		return nil, errors.New("watcher metrics is required")
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Service{
		logger: logger.Named("watcher").With(
			zap.String("coin", string(coin)),
			zap.String("network", string(network)),
		),
		blocksDir:    blocksDir,
		builder:      builder,
		metrics:      metrics,
		pollInterval: pollInterval,
		failureSleep: failureSleep,
		blockSignal:  blockSignal,
		sleep:        clock.SleepOrSignal,
		modTime:      latestModification,
	}, nil
}

// Run watches the blocks directory until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("indexing pass failed, backing off", zap.Error(err), zap.Duration("sleep", s.failureSleep))
			if sleepErr := s.sleep(ctx, s.failureSleep, nil); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if err := s.sleep(ctx, s.pollInterval, s.blockSignal); err != nil {
			return err
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	modified, err := s.modTime(s.blocksDir)
	if err != nil {
		return err
	}
	if !modified.After(s.indexedUpTo) {
		s.logger.Debug("block files unchanged", zap.Time("modified", modified))
		return nil
	}

	started := time.Now()
	blocks, err := s.builder.Pass(ctx)
	s.metrics.ObservePass(err, blocks, started)
	if err != nil {
		return fmt.Errorf("indexing pass: %w", err)
	}
	s.indexedUpTo = modified
	s.logger.Info("indexing pass complete", zap.Int("blocks", blocks), zap.Duration("took", time.Since(started)))
	return nil
}

// latestModification returns the newest modification time among the block files in dir.
func latestModification(dir string) (time.Time, error) {
	files, err := chain.BlockFiles(dir)
	if err != nil {
		return time.Time{}, err
	}
	var latest time.Time
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return time.Time{}, fmt.Errorf("stat block file: %w", err)
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest, nil
}
