package types

import (
	"cosmossdk.io/errors"
)

// batchswap module sentinel errors
var (
	ErrUninitialized        = errors.Register(ModuleName, 2, "pool not initialized")
	ErrAlreadyInitialized   = errors.Register(ModuleName, 3, "pool already initialized")
	ErrInvalidCurveKind     = errors.Register(ModuleName, 4, "invalid curve kind")
	ErrZeroAmount           = errors.Register(ModuleName, 5, "amount must be positive")
	ErrArithmeticOverflow   = errors.Register(ModuleName, 6, "arithmetic overflow")
	ErrInvalidTradeSize     = errors.Register(ModuleName, 7, "trade too large relative to pool depth")
	ErrQueueFull            = errors.Register(ModuleName, 8, "order queue is full")
	ErrSettlementInProgress = errors.Register(ModuleName, 9, "settlement in progress")
	ErrUnauthorized         = errors.Register(ModuleName, 10, "unauthorized")
	ErrInvalidDirection     = errors.Register(ModuleName, 11, "invalid trade direction")
	ErrInsufficientReserves = errors.Register(ModuleName, 12, "insufficient pool reserves")
	ErrInvalidPair          = errors.Register(ModuleName, 13, "invalid asset pair")
	ErrInvalidParams        = errors.Register(ModuleName, 14, "invalid params")
	ErrInvalidGenesis       = errors.Register(ModuleName, 15, "invalid genesis state")
)
