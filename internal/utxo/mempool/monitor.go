package mempool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/blockfile"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Monitor keeps a View in sync with the node mempool by polling.
type Monitor struct {
	logger   *zap.Logger
	client   RPCClient
	view     *View
	metrics  MonitorMetrics
	interval time.Duration
	limiter  ratelimit.Limiter
	sleep    func(context.Context, time.Duration) error
}

// NewMonitor constructs a Monitor. Zero interval and fetchRate select the defaults.
func NewMonitor(
	client RPCClient,
	view *View,
	metrics MonitorMetrics,
	interval time.Duration,
	fetchRate int,
	logger *zap.Logger,
) (*Monitor, error) {
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	if view == nil {
		return nil, errors.New("mempool view is required")
	}
	if metrics == nil {
		return nil, errors.New("mempool metrics is required")
	}
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if fetchRate <= 0 {
		fetchRate = defaultFetchRate
	}
	return &Monitor{
		logger:   logger.Named("mempoolMonitor"),
		client:   client,
		view:     view,
		metrics:  metrics,
		interval: interval,
		limiter:  ratelimit.New(fetchRate),
		sleep:    clock.SleepWithContext,
	}, nil
}

// Run polls until the context is canceled. Poll failures are logged and retried.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := m.Poll(ctx); err != nil && ctx.Err() == nil {
			m.logger.Warn("mempool poll failed", zap.Error(err), zap.Duration("sleep", m.interval))
		}
		if err := m.sleep(ctx, m.interval); err != nil {
			return err
		}
	}
}

// Poll fetches the node mempool once, adds unseen transactions and drops
// transactions that left the mempool.
func (m *Monitor) Poll(ctx context.Context) (err error) {
	started := time.Now()
	var added, removed int
	defer func() {
		m.metrics.ObservePoll(err, added, removed, started)
		m.metrics.ObserveSize(m.view.Len())
	}()

	hashes, err := m.client.GetRawMempool()
	if err != nil {
		return fmt.Errorf("get raw mempool: %w", err)
	}

	current := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		txHash := h.String()
		current[txHash] = struct{}{}
		if m.view.Has(txHash) {
			continue
		}
		if err = ctx.Err(); err != nil {
			return err
		}

		m.limiter.Take()
		raw, err := m.client.GetRawTransaction(h)
		if err != nil {
			// the transaction may have been mined or evicted since the listing
			m.logger.Debug("get raw transaction failed", zap.String("tx", txHash), zap.Error(err))
			continue
		}
		tx, err := decode(raw.MsgTx())
		if err != nil {
			m.logger.Warn("decode mempool transaction failed", zap.String("tx", txHash), zap.Error(err))
			continue
		}
		m.view.AddTransaction(tx)
		added++
	}

	for _, txHash := range m.view.TxHashes() {
		if _, ok := current[txHash]; ok {
			continue
		}
		if m.view.Remove(txHash) {
			removed++
		}
	}

	if added > 0 || removed > 0 {
		m.logger.Debug("mempool updated",
			zap.Int("added", added),
			zap.Int("removed", removed),
			zap.Int("size", m.view.Len()),
		)
	}
	return nil
}

// decode runs a node transaction through the block file decoder so both hashes
// follow the same rules as confirmed transactions.
func decode(msg *wire.MsgTx) (model.Transaction, error) {
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		return model.Transaction{}, fmt.Errorf("serialize: %w", err)
	}
	return blockfile.DecodeTransaction(buf.Bytes())
}
