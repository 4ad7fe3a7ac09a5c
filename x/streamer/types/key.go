package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name.
	ModuleName = "streamer"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

// KVStore keys.
var (
	LastDistributionKey = collections.NewPrefix(0)
)
