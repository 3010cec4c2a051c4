package types

import (
	"fmt"
)

const (
	// DefaultMaxBatchSize bounds the pending queue of a single pool
	DefaultMaxBatchSize uint32 = 1000

	// DefaultBatchWindowBlocks settles queued orders at most once per block
	DefaultBatchWindowBlocks uint64 = 1

	// MaxBatchSizeLimit is the hard ceiling governance may raise max_batch_size to
	MaxBatchSizeLimit uint32 = 100_000
)

// Params defines the batchswap module parameters
type Params struct {
	// MaxBatchSize is the maximum number of pending orders per pool
	MaxBatchSize uint32 `json:"max_batch_size"`
	// BatchWindowBlocks is the number of blocks between automatic
	// settlements of a pool. Zero disables automatic settlement.
	BatchWindowBlocks uint64 `json:"batch_window_blocks"`
}

// NewParams creates a new Params instance
func NewParams(maxBatchSize uint32, batchWindowBlocks uint64) Params {
	return Params{
		MaxBatchSize:      maxBatchSize,
		BatchWindowBlocks: batchWindowBlocks,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultMaxBatchSize, DefaultBatchWindowBlocks)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.MaxBatchSize == 0 {
		return ErrInvalidParams.Wrap("max batch size must be positive")
	}
	if p.MaxBatchSize > MaxBatchSizeLimit {
		return ErrInvalidParams.Wrapf("max batch size %d exceeds limit %d", p.MaxBatchSize, MaxBatchSizeLimit)
	}
	return nil
}

// String implements fmt.Stringer
func (p Params) String() string {
	return fmt.Sprintf("max_batch_size=%d batch_window_blocks=%d", p.MaxBatchSize, p.BatchWindowBlocks)
}
