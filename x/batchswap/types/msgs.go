package types

import (
	"strings"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgInitializePool creates a pool for an ordered asset pair
type MsgInitializePool struct {
	Authority string    `json:"authority"`
	MintA     string    `json:"mint_a"`
	MintB     string    `json:"mint_b"`
	VaultA    string    `json:"vault_a"`
	VaultB    string    `json:"vault_b"`
	CurveKind CurveKind `json:"curve_kind"`
}

// NewMsgInitializePool creates a new MsgInitializePool instance
func NewMsgInitializePool(authority, mintA, mintB, vaultA, vaultB string, kind CurveKind) *MsgInitializePool {
	return &MsgInitializePool{
		Authority: authority,
		MintA:     mintA,
		MintB:     mintB,
		VaultA:    vaultA,
		VaultB:    vaultB,
		CurveKind: kind,
	}
}

// ValidateBasic performs stateless checks
func (msg MsgInitializePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid authority address: %s", err)
	}
	if err := ValidatePair(msg.MintA, msg.MintB); err != nil {
		return err
	}
	if strings.TrimSpace(msg.VaultA) == "" || strings.TrimSpace(msg.VaultB) == "" {
		return sdkerrors.Wrap(ErrInvalidPair, "vault references cannot be empty")
	}
	if !msg.CurveKind.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidCurveKind, "%s", msg.CurveKind)
	}
	return nil
}

// MsgAddLiquidity deposits both assets into a pool
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   string   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, poolID string, amountA, amountB math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		PoolId:   poolID,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// ValidateBasic performs stateless checks
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid provider address: %s", err)
	}
	if strings.TrimSpace(msg.PoolId) == "" {
		return sdkerrors.Wrap(ErrUninitialized, "pool id cannot be empty")
	}
	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "amount A must be positive")
	}
	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "amount B must be positive")
	}
	return nil
}

// MsgRemoveLiquidity withdraws assets from a pool
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   string   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider, poolID string, amountA, amountB math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		PoolId:   poolID,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// ValidateBasic performs stateless checks
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid provider address: %s", err)
	}
	if strings.TrimSpace(msg.PoolId) == "" {
		return sdkerrors.Wrap(ErrUninitialized, "pool id cannot be empty")
	}
	if msg.AmountA.IsNil() || msg.AmountB.IsNil() || msg.AmountA.IsNegative() || msg.AmountB.IsNegative() {
		return sdkerrors.Wrap(ErrZeroAmount, "amounts cannot be negative")
	}
	if msg.AmountA.IsZero() && msg.AmountB.IsZero() {
		return sdkerrors.Wrap(ErrZeroAmount, "at least one amount must be positive")
	}
	return nil
}

// MsgPlaceOrder queues an order for the next batch
type MsgPlaceOrder struct {
	Trader    string    `json:"trader"`
	PoolId    string    `json:"pool_id"`
	Direction Direction `json:"direction"`
	Amount    math.Int  `json:"amount"`
}

// NewMsgPlaceOrder creates a new MsgPlaceOrder instance
func NewMsgPlaceOrder(trader, poolID string, direction Direction, amount math.Int) *MsgPlaceOrder {
	return &MsgPlaceOrder{
		Trader:    trader,
		PoolId:    poolID,
		Direction: direction,
		Amount:    amount,
	}
}

// ValidateBasic performs stateless checks
func (msg MsgPlaceOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid trader address: %s", err)
	}
	if strings.TrimSpace(msg.PoolId) == "" {
		return sdkerrors.Wrap(ErrUninitialized, "pool id cannot be empty")
	}
	if !msg.Direction.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidDirection, "%s", msg.Direction)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "order amount must be positive")
	}
	return nil
}

// MsgSettleBatch settles the pending orders of a pool. Anyone may send it.
type MsgSettleBatch struct {
	Settler string `json:"settler"`
	PoolId  string `json:"pool_id"`
}

// NewMsgSettleBatch creates a new MsgSettleBatch instance
func NewMsgSettleBatch(settler, poolID string) *MsgSettleBatch {
	return &MsgSettleBatch{
		Settler: settler,
		PoolId:  poolID,
	}
}

// ValidateBasic performs stateless checks
func (msg MsgSettleBatch) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Settler); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid settler address: %s", err)
	}
	if strings.TrimSpace(msg.PoolId) == "" {
		return sdkerrors.Wrap(ErrUninitialized, "pool id cannot be empty")
	}
	return nil
}
