// Package curve evaluates the resistance pricing curves used to settle a
// netted batch against a pool.
//
// Every curve values a trade at the pre-trade spot price
// floor(amountIn * reserveOut / reserveIn) and then withholds a resistance
// share s(r) of that value, where r = amountIn / (2 * reserveIn). The
// withheld part is the fee; the rest is paid out. All arithmetic is integer
// or 18-decimal fixed point, so results are bit-for-bit reproducible.
package curve

import (
	"cosmossdk.io/math"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// Curve prices a single trade against one side of a pool.
type Curve interface {
	// Quote returns the amount paid out and the resistance fee, both in
	// units of the output asset. amountOut + fee equals the trade valued at
	// the spot price.
	Quote(amountIn, reserveIn, reserveOut math.Int) (amountOut, fee math.Int, err error)
}

var curves = map[types.CurveKind]Curve{
	types.CurveKindRational:    Rational{},
	types.CurveKindExponential: Exponential{},
}

// ForKind returns the curve implementation registered for kind.
func ForKind(kind types.CurveKind) (Curve, error) {
	c, ok := curves[kind]
	if !ok {
		return nil, types.ErrInvalidCurveKind.Wrapf("no curve registered for %s", kind)
	}
	return c, nil
}

// Result is the post-trade state of a pool after one curve evaluation.
type Result struct {
	NewReserveA math.Int
	NewReserveB math.Int
	// AmountOut is in units of the asset being bought.
	AmountOut math.Int
	// FeeB is the resistance fee expressed in asset B.
	FeeB math.Int
}

// Evaluate applies a net trade of amount in direction dir to the reserves
// (reserveA, reserveB) and returns the new reserves and the fee in asset B.
// A zero amount leaves the reserves untouched and charges nothing.
//
// The input reserve strictly grows and the output reserve strictly shrinks
// with the trade size, and the output reserve never reaches zero: trades
// that would leave it empty fail with ErrInvalidTradeSize.
func Evaluate(kind types.CurveKind, reserveA, reserveB, amount math.Int, dir types.Direction) (Result, error) {
	c, err := ForKind(kind)
	if err != nil {
		return Result{}, err
	}
	if reserveA.IsNil() || reserveB.IsNil() || amount.IsNil() {
		return Result{}, types.ErrInvalidTradeSize.Wrap("reserves and amount must be set")
	}
	if amount.IsNegative() {
		return Result{}, types.ErrInvalidTradeSize.Wrapf("negative trade amount %s", amount)
	}
	if amount.IsZero() {
		return Result{
			NewReserveA: reserveA,
			NewReserveB: reserveB,
			AmountOut:   math.ZeroInt(),
			FeeB:        math.ZeroInt(),
		}, nil
	}
	if !reserveA.IsPositive() || !reserveB.IsPositive() {
		return Result{}, types.ErrInsufficientReserves.Wrapf("reserves %s/%s cannot price a trade", reserveA, reserveB)
	}

	switch dir {
	case types.DirectionAForB:
		out, fee, err := c.Quote(amount, reserveA, reserveB)
		if err != nil {
			return Result{}, err
		}
		newA, err := types.SafeAdd(reserveA, amount)
		if err != nil {
			return Result{}, err
		}
		newB, err := drain(reserveB, out)
		if err != nil {
			return Result{}, err
		}
		return Result{NewReserveA: newA, NewReserveB: newB, AmountOut: out, FeeB: fee}, nil

	case types.DirectionBForA:
		out, feeA, err := c.Quote(amount, reserveB, reserveA)
		if err != nil {
			return Result{}, err
		}
		newB, err := types.SafeAdd(reserveB, amount)
		if err != nil {
			return Result{}, err
		}
		newA, err := drain(reserveA, out)
		if err != nil {
			return Result{}, err
		}
		// fees are always booked in B, valued at the pre-trade price
		feeB, err := types.SafeMulDiv(feeA, reserveB, reserveA)
		if err != nil {
			return Result{}, err
		}
		return Result{NewReserveA: newA, NewReserveB: newB, AmountOut: out, FeeB: feeB}, nil

	default:
		return Result{}, types.ErrInvalidDirection.Wrapf("%s", dir)
	}
}

// drain subtracts out from reserve and refuses to leave the reserve empty.
func drain(reserve, out math.Int) (math.Int, error) {
	if out.GTE(reserve) {
		return math.Int{}, types.ErrInvalidTradeSize.Wrapf("output %s would exhaust reserve %s", out, reserve)
	}
	return types.SafeSub(reserve, out)
}

// spotValue returns floor(amountIn * reserveOut / reserveIn).
func spotValue(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	return types.SafeMulDiv(amountIn, reserveOut, reserveIn)
}
