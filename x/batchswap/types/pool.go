package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

// CurveKind selects the pricing family of a pool. It is fixed at creation.
type CurveKind uint8

const (
	// CurveKindUnspecified is never a valid pool curve.
	CurveKindUnspecified CurveKind = 0

	// CurveKindRational charges a resistance share of s(r) = r^2 / (1 + r^2).
	CurveKindRational CurveKind = 1

	// CurveKindExponential charges a resistance share of s(r) = 1 - exp(-r^2).
	CurveKindExponential CurveKind = 2
)

// String implements fmt.Stringer
func (c CurveKind) String() string {
	switch c {
	case CurveKindRational:
		return "rational"
	case CurveKindExponential:
		return "exponential"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// IsValid reports whether c names a supported curve family.
func (c CurveKind) IsValid() bool {
	return c == CurveKindRational || c == CurveKindExponential
}

// ParseCurveKind parses the textual form produced by CurveKind.String.
func ParseCurveKind(s string) (CurveKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rational":
		return CurveKindRational, nil
	case "exponential":
		return CurveKindExponential, nil
	default:
		return CurveKindUnspecified, ErrInvalidCurveKind.Wrapf("unknown curve kind %q", s)
	}
}

// Direction is the side of an order: which asset the trader provides.
type Direction uint8

const (
	// DirectionUnspecified is never a valid order direction.
	DirectionUnspecified Direction = 0

	// DirectionAForB: trader provides asset A and receives asset B.
	DirectionAForB Direction = 1

	// DirectionBForA: trader provides asset B and receives asset A.
	DirectionBForA Direction = 2
)

// String implements fmt.Stringer
func (d Direction) String() string {
	switch d {
	case DirectionAForB:
		return "a_for_b"
	case DirectionBForA:
		return "b_for_a"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(d))
	}
}

// IsValid reports whether d is AForB or BForA.
func (d Direction) IsValid() bool {
	return d == DirectionAForB || d == DirectionBForA
}

// ParseDirection parses the textual form produced by Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a_for_b", "aforb":
		return DirectionAForB, nil
	case "b_for_a", "bfora":
		return DirectionBForA, nil
	default:
		return DirectionUnspecified, ErrInvalidDirection.Wrapf("unknown direction %q", s)
	}
}

// Order is a queued trade waiting for the next batch settlement.
type Order struct {
	// Trader is an opaque reference to the order owner
	Trader string `json:"trader"`
	// Direction selects the input asset
	Direction Direction `json:"direction"`
	// Amount is the quantity of the input asset
	Amount math.Int `json:"amount"`
	// Sequence is assigned at enqueue time and orders the batch
	Sequence uint64 `json:"sequence"`
	// PlacedHeight is the block height the order was queued at
	PlacedHeight int64 `json:"placed_height"`
}

// Pool is the aggregate record of a two-asset pool. Reserves, the fee
// accumulator and the pending queue are stored together so a settlement
// commits all of them with a single write.
type Pool struct {
	Id        string `json:"id"`
	Authority string `json:"authority"`
	MintA     string `json:"mint_a"`
	MintB     string `json:"mint_b"`
	VaultA    string `json:"vault_a"`
	VaultB    string `json:"vault_b"`

	ReserveA        math.Int  `json:"reserve_a"`
	ReserveB        math.Int  `json:"reserve_b"`
	CurveKind       CurveKind `json:"curve_kind"`
	AccumulatedFeeB math.Int  `json:"accumulated_fee_b"`

	PendingOrders []Order `json:"pending_orders"`
	NextSequence  uint64  `json:"next_sequence"`

	// BatchId counts settlements that had at least one order.
	BatchId           uint64 `json:"batch_id"`
	LastSettledHeight int64  `json:"last_settled_height"`

	// LiquidityInitialized is set by the first deposit. From then on both
	// reserves must stay strictly positive.
	LiquidityInitialized bool `json:"liquidity_initialized"`
}

// NewPool returns an empty pool for the ordered pair (mintA, mintB).
func NewPool(id, authority, mintA, mintB, vaultA, vaultB string, kind CurveKind) Pool {
	return Pool{
		Id:              id,
		Authority:       authority,
		MintA:           mintA,
		MintB:           mintB,
		VaultA:          vaultA,
		VaultB:          vaultB,
		ReserveA:        math.ZeroInt(),
		ReserveB:        math.ZeroInt(),
		CurveKind:       kind,
		AccumulatedFeeB: math.ZeroInt(),
		PendingOrders:   []Order{},
		NextSequence:    1,
	}
}

// Clone returns a deep copy of the pool; the pending queue is not shared.
func (p Pool) Clone() Pool {
	cp := p
	cp.PendingOrders = make([]Order, len(p.PendingOrders))
	copy(cp.PendingOrders, p.PendingOrders)
	return cp
}

// Validate checks the structural invariants of a stored pool.
func (p Pool) Validate() error {
	if strings.TrimSpace(p.Id) == "" {
		return fmt.Errorf("pool id cannot be empty")
	}
	if err := ValidatePair(p.MintA, p.MintB); err != nil {
		return err
	}
	if want := PoolID(p.MintA, p.MintB); p.Id != want {
		return fmt.Errorf("pool id %s does not match derived id %s", p.Id, want)
	}
	if strings.TrimSpace(p.Authority) == "" || strings.TrimSpace(p.VaultA) == "" || strings.TrimSpace(p.VaultB) == "" {
		return ErrInvalidPair.Wrapf("pool %s: authority and vault references are required", p.Id)
	}
	if !p.CurveKind.IsValid() {
		return ErrInvalidCurveKind.Wrapf("pool %s: %s", p.Id, p.CurveKind)
	}
	amounts := []struct {
		name string
		v    math.Int
	}{
		{"reserve_a", p.ReserveA},
		{"reserve_b", p.ReserveB},
		{"accumulated_fee_b", p.AccumulatedFeeB},
	}
	for _, a := range amounts {
		if a.v.IsNil() || a.v.IsNegative() {
			return fmt.Errorf("pool %s: %s must be non-negative", p.Id, a.name)
		}
		if a.v.GT(MaxAmount) {
			return ErrArithmeticOverflow.Wrapf("pool %s: %s out of range", p.Id, a.name)
		}
	}
	if p.LiquidityInitialized && (!p.ReserveA.IsPositive() || !p.ReserveB.IsPositive()) {
		return ErrInsufficientReserves.Wrapf("pool %s: reserves must be positive once liquidity was added", p.Id)
	}
	var prev uint64
	for i, o := range p.PendingOrders {
		if !o.Direction.IsValid() {
			return ErrInvalidDirection.Wrapf("pool %s: order %d", p.Id, o.Sequence)
		}
		if o.Amount.IsNil() || !o.Amount.IsPositive() {
			return ErrZeroAmount.Wrapf("pool %s: order %d", p.Id, o.Sequence)
		}
		if i > 0 && o.Sequence <= prev {
			return fmt.Errorf("pool %s: order sequences must be strictly increasing", p.Id)
		}
		if o.Sequence >= p.NextSequence {
			return fmt.Errorf("pool %s: order sequence %d not below next sequence %d", p.Id, o.Sequence, p.NextSequence)
		}
		prev = o.Sequence
	}
	return nil
}

// ValidatePair checks that both mints are set and distinct.
func ValidatePair(mintA, mintB string) error {
	if strings.TrimSpace(mintA) == "" || strings.TrimSpace(mintB) == "" {
		return ErrInvalidPair.Wrap("mints cannot be empty")
	}
	if mintA == mintB {
		return ErrInvalidPair.Wrapf("mints must differ, got %s twice", mintA)
	}
	return nil
}

// BatchReceipt describes the outcome of one SettleBatch call.
type BatchReceipt struct {
	PoolId       string    `json:"pool_id"`
	BatchId      uint64    `json:"batch_id"`
	OrderCount   uint32    `json:"order_count"`
	NewReserveA  math.Int  `json:"new_reserve_a"`
	NewReserveB  math.Int  `json:"new_reserve_b"`
	FeeDelta     math.Int  `json:"fee_delta"`
	NetDirection Direction `json:"net_direction"`
	NetAmount    math.Int  `json:"net_amount"`
	AmountOut    math.Int  `json:"amount_out"`
}

// IsEmpty reports whether the receipt describes a no-op settlement.
func (r BatchReceipt) IsEmpty() bool {
	return r.OrderCount == 0
}
