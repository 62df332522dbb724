package watcher

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Builder interface {
		Pass(ctx context.Context) (int, error)
	}
	WatcherMetrics interface {
		ObservePass(err error, blocks int, started time.Time)
	}
)
