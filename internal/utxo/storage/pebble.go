package storage

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

const pebbleCacheSize = 256 << 20

var errBatchClosed = errors.New("batch already closed")

type pebbleStore struct {
	db *pebble.DB
}

// OpenPebble opens or creates a Pebble store at path. A nil fs uses the OS filesystem.
func OpenPebble(path string, fs vfs.FS) (Store, error) {
	cache := pebble.NewCache(pebbleCacheSize)
	defer cache.Unref()

	opts := &pebble.Options{
		Cache:        cache,
		MemTableSize: 64 << 20,
		Levels: []pebble.LevelOptions{
			{Compression: pebble.SnappyCompression},
		},
		FormatMajorVersion: pebble.FormatNewest,
	}
	if fs != nil {
		opts.FS = fs
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble %s: %w", path, err)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Get(key []byte) ([]byte, error) {
	v, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return clone(v), nil
}

func (s *pebbleStore) Has(key []byte) (bool, error) {
	_, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *pebbleStore) Iterate(lower, upper []byte, fn func(key, value []byte) error) error {
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return err
	}
	for it.First(); it.Valid(); it.Next() {
		if err = fn(it.Key(), it.Value()); err != nil {
			_ = it.Close()
			return err
		}
	}
	return it.Close()
}

func (s *pebbleStore) Last(prefix []byte) ([]byte, []byte, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: PrefixUpperBound(prefix)})
	if err != nil {
		return nil, nil, err
	}
	defer it.Close()
	if !it.Last() {
		if err = it.Error(); err != nil {
			return nil, nil, err
		}
		return nil, nil, ErrNotFound
	}
	return clone(it.Key()), clone(it.Value()), nil
}

func (s *pebbleStore) NewBatch() Batch {
	return &pebbleBatch{batch: s.db.NewBatch()}
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}

type pebbleBatch struct {
	batch  *pebble.Batch
	count  int
	closed bool
}

func (b *pebbleBatch) Put(key, value []byte) {
	_ = b.batch.Set(key, value, nil)
	b.count++
}

func (b *pebbleBatch) Delete(key []byte) {
	_ = b.batch.Delete(key, nil)
	b.count++
}

func (b *pebbleBatch) Len() int {
	return b.count
}

func (b *pebbleBatch) Commit() error {
	if b.closed {
		return errBatchClosed
	}
	return b.batch.Commit(pebble.Sync)
}

// Close returns the batch to pebble's pool. Later calls are no-ops.
func (b *pebbleBatch) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.batch.Close()
}
