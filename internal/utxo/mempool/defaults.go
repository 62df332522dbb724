package mempool

import "time"

const (
	defaultPollInterval = 10 * time.Second
	defaultFetchRate    = 200
)
