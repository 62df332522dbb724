package storage

import (
	"errors"
	"time"
)

// Metrics records store operation outcomes.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

type observedStore struct {
	Store
	metrics Metrics
}

// NewObserved reports reads and batch commits of store to metrics.
func NewObserved(store Store, metrics Metrics) Store {
	return &observedStore{Store: store, metrics: metrics}
}

func (s *observedStore) Get(key []byte) (value []byte, err error) {
	started := time.Now()
	defer func() {
		if errors.Is(err, ErrNotFound) {
			s.metrics.Observe("get", nil, started)
			return
		}
		s.metrics.Observe("get", err, started)
	}()
	return s.Store.Get(key)
}

func (s *observedStore) Iterate(lower, upper []byte, fn func(key, value []byte) error) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("iterate", err, started)
	}()
	return s.Store.Iterate(lower, upper, fn)
}

func (s *observedStore) NewBatch() Batch {
	return &observedBatch{Batch: s.Store.NewBatch(), metrics: s.metrics}
}

type observedBatch struct {
	Batch
	metrics Metrics
}

func (b *observedBatch) Commit() (err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("commit", err, started)
	}()
	return b.Batch.Commit()
}
