package storage

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const levelDBCacheSize = 64 * opt.MiB

type levelStore struct {
	db *leveldb.DB
}

// OpenLevelDB opens or creates a LevelDB store at path.
func OpenLevelDB(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		BlockCacheCapacity: levelDBCacheSize,
		WriteBuffer:        32 * opt.MiB,
	})
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &levelStore{db: db}, nil
}

// NewLevelDB wraps an already open database.
func NewLevelDB(db *leveldb.DB) Store {
	return &levelStore{db: db}
}

func (s *levelStore) Get(key []byte) ([]byte, error) {
	v, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	return v, err
}

func (s *levelStore) Has(key []byte) (bool, error) {
	return s.db.Has(key, nil)
}

func (s *levelStore) Iterate(lower, upper []byte, fn func(key, value []byte) error) error {
	it := s.db.NewIterator(&util.Range{Start: lower, Limit: upper}, nil)
	defer it.Release()
	for it.Next() {
		if err := fn(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return it.Error()
}

func (s *levelStore) Last(prefix []byte) ([]byte, []byte, error) {
	it := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()
	if !it.Last() {
		if err := it.Error(); err != nil {
			return nil, nil, err
		}
		return nil, nil, ErrNotFound
	}
	return clone(it.Key()), clone(it.Value()), nil
}

func (s *levelStore) NewBatch() Batch {
	return &levelBatch{db: s.db, batch: new(leveldb.Batch)}
}

func (s *levelStore) Close() error {
	return s.db.Close()
}

type levelBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *levelBatch) Put(key, value []byte) {
	b.batch.Put(key, value)
}

func (b *levelBatch) Delete(key []byte) {
	b.batch.Delete(key)
}

func (b *levelBatch) Len() int {
	return b.batch.Len()
}

func (b *levelBatch) Commit() error {
	return b.db.Write(b.batch, nil)
}

func (b *levelBatch) Close() error {
	b.batch.Reset()
	return nil
}
