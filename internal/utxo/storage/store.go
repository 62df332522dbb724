// Package storage is the ordered key-value store behind the index.
package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get and Last when no key matches.
var ErrNotFound = errors.New("key not found")

// Engine names a Store implementation.
type Engine string

const (
	LevelDB Engine = "leveldb"
	Pebble  Engine = "pebble"
)

type (
	// Store is an ordered byte-keyed store. Implementations are safe for one writer and many readers.
	Store interface {
		Get(key []byte) ([]byte, error)
		Has(key []byte) (bool, error)
		// Iterate visits keys in [lower, upper) in ascending order; nil upper is unbounded.
		// key and value are only valid during the callback.
		Iterate(lower, upper []byte, fn func(key, value []byte) error) error
		// Last returns the greatest key with prefix.
		Last(prefix []byte) (key, value []byte, err error)
		NewBatch() Batch
		Close() error
	}
	// Batch collects writes that become visible together on Commit. Put and Delete copy their arguments.
	// Close releases the batch and must be called whether or not Commit ran; it is safe to call twice.
	Batch interface {
		Put(key, value []byte)
		Delete(key []byte)
		Len() int
		Commit() error
		Close() error
	}
)

// Open opens the store at path with the named engine.
func Open(engine Engine, path string) (Store, error) {
	switch engine {
	case LevelDB, "":
		return OpenLevelDB(path)
	case Pebble:
		return OpenPebble(path, nil)
	default:
		return nil, fmt.Errorf("unsupported storage engine %q", engine)
	}
}

// IteratePrefix visits every key starting with prefix.
func IteratePrefix(s Store, prefix []byte, fn func(key, value []byte) error) error {
	return s.Iterate(prefix, PrefixUpperBound(prefix), fn)
}

// PrefixUpperBound returns the smallest key greater than every key with prefix,
// or nil when no such key exists.
func PrefixUpperBound(prefix []byte) []byte {
	upper := make([]byte, len(prefix))
	copy(upper, prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			return upper[:i+1]
		}
	}
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
