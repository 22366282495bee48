package batch

import "errors"

// Sentinel errors for package batch.
var (
	ErrQueueStopped = errors.New("queue stopped")
	ErrUnknownMode  = errors.New("unknown batch mode")
)
