package curve

import (
	"cosmossdk.io/math"

	"github.com/landau-swap/landau/x/batchswap/types"
)

var (
	two  = math.NewInt(2)
	four = math.NewInt(4)
)

// Rational withholds s(r) = r^2 / (1 + r^2) of the spot value, r = x / (2 * Rin).
//
// Substituting r gives amountOut = 4 * x * Rout * Rin / (x^2 + 4 * Rin^2),
// which is computed directly in integers. The output peaks at x = 2 * Rin,
// where it would drain the whole output reserve, so the curve only accepts
// x < 2 * Rin.
type Rational struct{}

var _ Curve = Rational{}

// Quote implements Curve.
func (Rational) Quote(amountIn, reserveIn, reserveOut math.Int) (math.Int, math.Int, error) {
	if amountIn.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), nil
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInsufficientReserves.Wrap("reserves must be positive")
	}

	twoReserveIn, err := types.SafeMul(reserveIn, two)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountIn.GTE(twoReserveIn) {
		return math.Int{}, math.Int{}, types.ErrInvalidTradeSize.Wrapf(
			"amount %s must be below twice the input reserve %s", amountIn, reserveIn)
	}

	amountSq, err := types.SafeMul(amountIn, amountIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	reserveInSq, err := types.SafeMul(reserveIn, reserveIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	fourReserveInSq, err := types.SafeMul(reserveInSq, four)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	denom, err := types.SafeAdd(amountSq, fourReserveInSq)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	fourReserveIn, err := types.SafeMul(reserveIn, four)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountTimesOut, err := types.SafeMul(amountIn, reserveOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountOut, err := types.SafeMulDiv(amountTimesOut, fourReserveIn, denom)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	theoretical, err := spotValue(amountIn, reserveIn, reserveOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountOut.GT(theoretical) {
		return math.Int{}, math.Int{}, types.ErrInvalidTradeSize.Wrapf(
			"curve output %s exceeds spot value %s", amountOut, theoretical)
	}

	fee, err := types.SafeSub(theoretical, amountOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountOut, fee, nil
}
