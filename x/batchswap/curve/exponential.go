package curve

import (
	"cosmossdk.io/math"

	"github.com/landau-swap/landau/x/batchswap/types"
)

const (
	// maxFixedPointBits bounds the trade size fed into 18-decimal fixed
	// point; LegacyDec panics well above this.
	maxFixedPointBits = 190

	// maxSeriesTerms caps the exp(-y) expansion. With y < 0.5 the terms
	// vanish at 18 decimals long before this.
	maxSeriesTerms = 40
)

var decimalScale = math.NewIntWithDecimal(1, math.LegacyPrecision)

// Exponential withholds s(r) = 1 - exp(-r^2) of the spot value, r = x / (2 * Rin).
//
// exp(-r^2) is evaluated as a Taylor series in 18-decimal fixed point. The
// paid-out amount x * (Rout / Rin) * exp(-r^2) is increasing only while
// r^2 < 1/2, so the curve accepts x^2 < 2 * Rin^2.
type Exponential struct{}

var _ Curve = Exponential{}

// Quote implements Curve.
func (Exponential) Quote(amountIn, reserveIn, reserveOut math.Int) (math.Int, math.Int, error) {
	if amountIn.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), nil
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInsufficientReserves.Wrap("reserves must be positive")
	}
	if amountIn.BigInt().BitLen() > maxFixedPointBits || reserveIn.BigInt().BitLen() > maxFixedPointBits {
		return math.Int{}, math.Int{}, types.ErrArithmeticOverflow.Wrapf(
			"amount %s exceeds the fixed-point range", amountIn)
	}

	amountSq, err := types.SafeMul(amountIn, amountIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	reserveInSq, err := types.SafeMul(reserveIn, reserveIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	limit, err := types.SafeMul(reserveInSq, two)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountSq.GTE(limit) {
		return math.Int{}, math.Int{}, types.ErrInvalidTradeSize.Wrapf(
			"amount %s outside the monotonic region of input reserve %s", amountIn, reserveIn)
	}

	// y = r^2 = (x / Rin)^2 / 4
	ratio := math.LegacyNewDecFromInt(amountIn).QuoInt(reserveIn)
	y := ratio.Mul(ratio).QuoInt64(4)
	decay := expNeg(y)

	theoretical, err := spotValue(amountIn, reserveIn, reserveOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	// decay.BigInt() is exp(-y) scaled by 10^18
	amountTimesOut, err := types.SafeMul(amountIn, reserveOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	scaledIn, err := types.SafeMul(reserveIn, decimalScale)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountOut, err := types.SafeMulDiv(amountTimesOut, math.NewIntFromBigInt(decay.BigInt()), scaledIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	// expNeg never exceeds one, so amountOut <= theoretical
	fee, err := types.SafeSub(theoretical, amountOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountOut, fee, nil
}

// expNeg returns exp(-y) for 0 <= y < 1 using the alternating Taylor series.
func expNeg(y math.LegacyDec) math.LegacyDec {
	sum := math.LegacyOneDec()
	term := math.LegacyOneDec()
	for k := int64(1); k <= maxSeriesTerms; k++ {
		term = term.Mul(y).QuoInt64(k)
		if term.IsZero() {
			break
		}
		if k%2 == 1 {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
	}
	if sum.IsNegative() {
		return math.LegacyZeroDec()
	}
	if sum.GT(math.LegacyOneDec()) {
		return math.LegacyOneDec()
	}
	return sum
}
