package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "batchswap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// PoolSeed is mixed into every pool address derivation.
	PoolSeed = "pool"
)

// Store key prefixes
var (
	PoolKeyPrefix = []byte{0x01} // prefix for pool records
	ParamsKey     = []byte{0x02} // key for module parameters
)

// PoolAddress derives the deterministic address of the pool for the ordered
// pair (mintA, mintB). (A, B) and (B, A) are distinct pools.
func PoolAddress(mintA, mintB string) []byte {
	return address.Module(ModuleName, []byte(PoolSeed), []byte(mintA), []byte(mintB))
}

// PoolID returns the bech32 form of PoolAddress, used as the public pool identifier.
func PoolID(mintA, mintB string) string {
	return sdk.AccAddress(PoolAddress(mintA, mintB)).String()
}

// PoolKey returns the store key for a pool by its derived address
func PoolKey(poolAddr []byte) []byte {
	key := make([]byte, 0, len(PoolKeyPrefix)+len(poolAddr))
	key = append(key, PoolKeyPrefix...)
	return append(key, poolAddr...)
}
