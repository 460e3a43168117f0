package config

import "errors"

// ErrInvalidFeeBps indicates that SWAP_FEE_BPS or ADMIN_FEE_BPS is not a
// non-negative integer.
var ErrInvalidFeeBps = errors.New("invalid fee basis points")

// ErrInvalidQueueSize indicates that EVENT_QUEUE_SIZE is not a positive integer.
var ErrInvalidQueueSize = errors.New("invalid EVENT_QUEUE_SIZE")
