package types

// Event types for the batchswap module
const (
	EventTypePoolInitialized         = "pool_initialized"
	EventTypeLiquidityAdded          = "liquidity_added"
	EventTypeLiquidityRemoved        = "liquidity_removed"
	EventTypeOrderPlaced             = "order_placed"
	EventTypeBatchSettled            = "batch_settled"
	EventTypeBatchSettlementFailed   = "batch_settlement_failed"
	EventTypeBatchSettlementEndBlock = "batch_settlement_end_block"

	AttributeKeyPoolID         = "pool_id"
	AttributeKeyAuthority      = "authority"
	AttributeKeyMintA          = "mint_a"
	AttributeKeyMintB          = "mint_b"
	AttributeKeyCurveKind      = "curve_kind"
	AttributeKeyProvider       = "provider"
	AttributeKeyAmountA        = "amount_a"
	AttributeKeyAmountB        = "amount_b"
	AttributeKeyReserveA       = "reserve_a"
	AttributeKeyReserveB       = "reserve_b"
	AttributeKeyTrader         = "trader"
	AttributeKeyDirection      = "direction"
	AttributeKeyAmount         = "amount"
	AttributeKeySequence       = "sequence"
	AttributeKeyBatchID        = "batch_id"
	AttributeKeyOrderCount     = "order_count"
	AttributeKeyNetDirection   = "net_direction"
	AttributeKeyNetAmount      = "net_amount"
	AttributeKeyAmountOut      = "amount_out"
	AttributeKeyFeeDelta       = "fee_delta"
	AttributeKeyAccumulatedFee = "accumulated_fee_b"
	AttributeKeyError          = "error"
	AttributeKeySettledCount   = "settled_count"
	AttributeKeyFailedCount    = "failed_count"
	AttributeKeyHeight         = "height"
)
