package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Checked arithmetic over math.Int. Every result must stay within
// [0, MaxAmount]; anything outside is reported as ErrArithmeticOverflow.

// MaxAmount is the largest quantity a reserve, fee or intermediate value may hold (2^256 - 1).
var MaxAmount = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))

var maxAmountBig = MaxAmount.BigInt()

func checkRange(op string, result *big.Int) (math.Int, error) {
	if result.Sign() < 0 {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s: result is negative", op)
	}
	if result.Cmp(maxAmountBig) > 0 {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s: result exceeds 256 bits", op)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	return checkRange("add", new(big.Int).Add(a.BigInt(), b.BigInt()))
}

// SafeSub subtracts b from a, failing on underflow
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("sub: cannot subtract %s from %s", b, a)
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	return checkRange("mul", new(big.Int).Mul(a.BigInt(), b.BigInt()))
}

// SafeQuo divides a by b, truncating toward zero
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, ErrArithmeticOverflow.Wrap("quo: division by zero")
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(a.BigInt(), b.BigInt())), nil
}

// SafeMulDiv performs floor(a * b / c). The product is checked against the
// representable range before dividing.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, ErrArithmeticOverflow.Wrap("muldiv: division by zero")
	}
	product, err := SafeMul(a, b)
	if err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(product.BigInt(), c.BigInt())), nil
}
