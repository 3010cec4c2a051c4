package keeper

import (
	"context"
	"fmt"

	"github.com/landau-swap/landau/x/batchswap/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the batchswap MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// InitializePool handles the creation of a new pool
func (ms msgServer) InitializePool(goCtx context.Context, msg *types.MsgInitializePool) (*types.MsgInitializePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitializePool: validate: %w", err)
	}

	pool, err := ms.Keeper.InitializePool(goCtx, msg.Authority, msg.MintA, msg.MintB, msg.VaultA, msg.VaultB, msg.CurveKind)
	if err != nil {
		return nil, fmt.Errorf("InitializePool: %w", err)
	}

	return &types.MsgInitializePoolResponse{
		PoolId: pool.Id,
	}, nil
}

// AddLiquidity handles deposits by the pool authority
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	reserveA, reserveB, err := ms.Keeper.AddLiquidity(goCtx, msg.Provider, msg.PoolId, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		ReserveA: reserveA,
		ReserveB: reserveB,
	}, nil
}

// RemoveLiquidity handles withdrawals by the pool authority
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	reserveA, reserveB, err := ms.Keeper.RemoveLiquidity(goCtx, msg.Provider, msg.PoolId, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		ReserveA: reserveA,
		ReserveB: reserveB,
	}, nil
}

// PlaceOrder queues an order for the next batch
func (ms msgServer) PlaceOrder(goCtx context.Context, msg *types.MsgPlaceOrder) (*types.MsgPlaceOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("PlaceOrder: validate: %w", err)
	}

	orderID, err := ms.Keeper.PlaceOrder(goCtx, msg.Trader, msg.PoolId, msg.Direction, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("PlaceOrder: %w", err)
	}

	return &types.MsgPlaceOrderResponse{
		OrderId: orderID,
	}, nil
}

// SettleBatch settles the pending queue of a pool; anyone may trigger it
func (ms msgServer) SettleBatch(goCtx context.Context, msg *types.MsgSettleBatch) (*types.MsgSettleBatchResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SettleBatch: validate: %w", err)
	}

	receipt, err := ms.Keeper.SettleBatch(goCtx, msg.Settler, msg.PoolId)
	if err != nil {
		return nil, fmt.Errorf("SettleBatch: %w", err)
	}

	return &types.MsgSettleBatchResponse{
		Receipt: receipt,
	}, nil
}
