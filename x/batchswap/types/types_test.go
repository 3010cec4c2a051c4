package types

import (
	"errors"
	"testing"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func testAddr(name string) string {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz).String()
}

func TestErrorDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		err      *sdkerrors.Error
		wantCode uint32
	}{
		{"ErrUninitialized", ErrUninitialized, 2},
		{"ErrAlreadyInitialized", ErrAlreadyInitialized, 3},
		{"ErrInvalidCurveKind", ErrInvalidCurveKind, 4},
		{"ErrZeroAmount", ErrZeroAmount, 5},
		{"ErrArithmeticOverflow", ErrArithmeticOverflow, 6},
		{"ErrInvalidTradeSize", ErrInvalidTradeSize, 7},
		{"ErrQueueFull", ErrQueueFull, 8},
		{"ErrSettlementInProgress", ErrSettlementInProgress, 9},
		{"ErrUnauthorized", ErrUnauthorized, 10},
		{"ErrInvalidDirection", ErrInvalidDirection, 11},
		{"ErrInsufficientReserves", ErrInsufficientReserves, 12},
		{"ErrInvalidPair", ErrInvalidPair, 13},
		{"ErrInvalidParams", ErrInvalidParams, 14},
		{"ErrInvalidGenesis", ErrInvalidGenesis, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantCode, tc.err.ABCICode())
			require.Equal(t, ModuleName, tc.err.Codespace())

			wrapped := tc.err.Wrap("context")
			require.True(t, errors.Is(wrapped, tc.err))
		})
	}
}

func TestSafeMath(t *testing.T) {
	one := math.OneInt()

	sum, err := SafeAdd(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5), sum)

	_, err = SafeAdd(MaxAmount, one)
	require.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = SafeSub(one, math.NewInt(2))
	require.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = SafeMul(MaxAmount, math.NewInt(2))
	require.ErrorIs(t, err, ErrArithmeticOverflow)

	prod, err := SafeMul(MaxAmount, math.ZeroInt())
	require.NoError(t, err)
	require.True(t, prod.IsZero())

	q, err := SafeMulDiv(math.NewInt(7), math.NewInt(3), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), q)

	_, err = SafeMulDiv(one, one, math.ZeroInt())
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	_, err = SafeQuo(one, math.ZeroInt())
	require.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestParseEnums(t *testing.T) {
	kind, err := ParseCurveKind("Rational")
	require.NoError(t, err)
	require.Equal(t, CurveKindRational, kind)
	kind, err = ParseCurveKind(CurveKindExponential.String())
	require.NoError(t, err)
	require.Equal(t, CurveKindExponential, kind)
	_, err = ParseCurveKind("linear")
	require.ErrorIs(t, err, ErrInvalidCurveKind)

	dir, err := ParseDirection("b_for_a")
	require.NoError(t, err)
	require.Equal(t, DirectionBForA, dir)
	_, err = ParseDirection("sideways")
	require.ErrorIs(t, err, ErrInvalidDirection)

	require.False(t, CurveKind(0).IsValid())
	require.False(t, Direction(3).IsValid())
}

func validPool() Pool {
	p := NewPool(PoolID("a", "b"), "auth", "a", "b", "va", "vb", CurveKindRational)
	p.ReserveA = math.NewInt(100)
	p.ReserveB = math.NewInt(200)
	p.LiquidityInitialized = true
	p.PendingOrders = []Order{
		{Trader: "t", Direction: DirectionAForB, Amount: math.NewInt(5), Sequence: 1},
		{Trader: "t", Direction: DirectionBForA, Amount: math.NewInt(6), Sequence: 2},
	}
	p.NextSequence = 3
	return p
}

func TestPoolValidate(t *testing.T) {
	require.NoError(t, validPool().Validate())

	tests := []struct {
		name   string
		mutate func(p *Pool)
	}{
		{"wrong id", func(p *Pool) { p.Id = PoolID("b", "a") }},
		{"same mints", func(p *Pool) { p.MintB = p.MintA }},
		{"missing vault", func(p *Pool) { p.VaultB = "" }},
		{"bad curve", func(p *Pool) { p.CurveKind = CurveKindUnspecified }},
		{"negative reserve", func(p *Pool) { p.ReserveA = math.NewInt(-1) }},
		{"nil fee", func(p *Pool) { p.AccumulatedFeeB = math.Int{} }},
		{"empty reserve after funding", func(p *Pool) { p.ReserveB = math.ZeroInt() }},
		{"zero order", func(p *Pool) { p.PendingOrders[0].Amount = math.ZeroInt() }},
		{"bad direction", func(p *Pool) { p.PendingOrders[1].Direction = DirectionUnspecified }},
		{"unordered queue", func(p *Pool) { p.PendingOrders[1].Sequence = 1 }},
		{"sequence ahead of counter", func(p *Pool) { p.NextSequence = 2 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPool()
			tc.mutate(&p)
			require.Error(t, p.Validate())
		})
	}
}

func TestPoolClone(t *testing.T) {
	p := validPool()
	cp := p.Clone()
	cp.PendingOrders[0].Amount = math.NewInt(999)
	require.Equal(t, math.NewInt(5), p.PendingOrders[0].Amount)
}

func TestPoolIDIsOrdered(t *testing.T) {
	require.Equal(t, PoolID("a", "b"), PoolID("a", "b"))
	require.NotEqual(t, PoolID("a", "b"), PoolID("b", "a"))
	require.NotEqual(t, PoolAddress("ab", "c"), PoolAddress("a", "bc"))
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
	require.ErrorIs(t, NewParams(0, 1).Validate(), ErrInvalidParams)
	require.ErrorIs(t, NewParams(MaxBatchSizeLimit+1, 1).Validate(), ErrInvalidParams)
	require.NoError(t, NewParams(1, 0).Validate())
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, DefaultGenesis().Validate())

	gs := GenesisState{Params: DefaultParams(), Pools: []Pool{validPool()}}
	require.NoError(t, gs.Validate())

	gs.Pools = append(gs.Pools, validPool())
	require.ErrorIs(t, gs.Validate(), ErrInvalidGenesis)

	gs = GenesisState{Params: NewParams(1, 1), Pools: []Pool{validPool()}}
	require.ErrorIs(t, gs.Validate(), ErrInvalidGenesis)
}

func TestMsgValidateBasic(t *testing.T) {
	auth := testAddr("authority")
	poolID := PoolID("a", "b")

	require.NoError(t, NewMsgInitializePool(auth, "a", "b", "va", "vb", CurveKindRational).ValidateBasic())
	require.ErrorIs(t, NewMsgInitializePool("bad", "a", "b", "va", "vb", CurveKindRational).ValidateBasic(), ErrUnauthorized)
	require.ErrorIs(t, NewMsgInitializePool(auth, "a", "a", "va", "vb", CurveKindRational).ValidateBasic(), ErrInvalidPair)
	require.ErrorIs(t, NewMsgInitializePool(auth, "a", "b", "", "vb", CurveKindRational).ValidateBasic(), ErrInvalidPair)
	require.ErrorIs(t, NewMsgInitializePool(auth, "a", "b", "va", "vb", CurveKind(9)).ValidateBasic(), ErrInvalidCurveKind)

	require.NoError(t, NewMsgAddLiquidity(auth, poolID, math.NewInt(1), math.NewInt(1)).ValidateBasic())
	require.ErrorIs(t, NewMsgAddLiquidity(auth, poolID, math.ZeroInt(), math.NewInt(1)).ValidateBasic(), ErrZeroAmount)

	require.NoError(t, NewMsgRemoveLiquidity(auth, poolID, math.ZeroInt(), math.NewInt(1)).ValidateBasic())
	require.ErrorIs(t, NewMsgRemoveLiquidity(auth, poolID, math.ZeroInt(), math.ZeroInt()).ValidateBasic(), ErrZeroAmount)
	require.ErrorIs(t, NewMsgRemoveLiquidity(auth, "", math.OneInt(), math.ZeroInt()).ValidateBasic(), ErrUninitialized)

	require.NoError(t, NewMsgPlaceOrder(auth, poolID, DirectionAForB, math.OneInt()).ValidateBasic())
	require.ErrorIs(t, NewMsgPlaceOrder(auth, poolID, DirectionUnspecified, math.OneInt()).ValidateBasic(), ErrInvalidDirection)
	require.ErrorIs(t, NewMsgPlaceOrder(auth, poolID, DirectionBForA, math.Int{}).ValidateBasic(), ErrZeroAmount)

	require.NoError(t, NewMsgSettleBatch(auth, poolID).ValidateBasic())
	require.ErrorIs(t, NewMsgSettleBatch("", poolID).ValidateBasic(), ErrUnauthorized)
}
