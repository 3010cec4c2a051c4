package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitializePool(context.Context, *MsgInitializePool) (*MsgInitializePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	PlaceOrder(context.Context, *MsgPlaceOrder) (*MsgPlaceOrderResponse, error)
	SettleBatch(context.Context, *MsgSettleBatch) (*MsgSettleBatchResponse, error)
}

// MsgInitializePoolResponse defines the response for InitializePool
type MsgInitializePoolResponse struct {
	PoolId string `json:"pool_id"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	ReserveA math.Int `json:"reserve_a"`
	ReserveB math.Int `json:"reserve_b"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	ReserveA math.Int `json:"reserve_a"`
	ReserveB math.Int `json:"reserve_b"`
}

// MsgPlaceOrderResponse defines the response for PlaceOrder
type MsgPlaceOrderResponse struct {
	OrderId uint64 `json:"order_id"`
}

// MsgSettleBatchResponse defines the response for SettleBatch
type MsgSettleBatchResponse struct {
	Receipt BatchReceipt `json:"receipt"`
}
