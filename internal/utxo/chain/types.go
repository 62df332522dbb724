package chain

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockReader interface {
		ReadBlock(path string, offset int64, height uint64, headerOnly bool) (model.Block, error)
	}
	Indexer interface {
		HasIndexedBlock(hash string, height uint64) (bool, error)
		IndexBlock(ctx context.Context, block model.Block) error
	}
	BuilderMetrics interface {
		ObserveScan(err error, files, candidates int, started time.Time)
		ObserveBlock(err error, height uint64, started time.Time)
	}
)
