package index

const (
	defaultResolveWorkers = 4
	firstSequence         = 1
)
