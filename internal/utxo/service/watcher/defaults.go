package watcher

import "time"

const (
	defaultPollInterval = 10 * time.Second
	failureSleep        = 30 * time.Second
)
