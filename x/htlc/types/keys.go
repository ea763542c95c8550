package types

const (
	// ModuleName defines the module name
	ModuleName = "htlc"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes. Each logical namespace of the contract state gets its
// own single-byte prefix so that swaps, resolvers, user indexes and counters
// never collide inside the shared KV store.
var (
	ParamsKey              = []byte{0x01}
	SwapKeyPrefix          = []byte{0x02}
	ResolverKeyPrefix      = []byte{0x03}
	UserSwapsKeyPrefix     = []byte{0x04}
	SwapCounterKey         = []byte{0x05}
	TotalSwapsCreatedKey   = []byte{0x06}
	TotalSwapsCompletedKey = []byte{0x07}
	TotalFeesCollectedKey  = []byte{0x08}
)

// GetSwapKey returns the store key for a swap id.
func GetSwapKey(id string) []byte {
	return append(SwapKeyPrefix, []byte(id)...)
}

// GetResolverKey returns the store key for a resolver address.
func GetResolverKey(resolver []byte) []byte {
	return append(ResolverKeyPrefix, resolver...)
}

// GetUserSwapsKey returns the store key for a user's swap id index.
func GetUserSwapsKey(user []byte) []byte {
	return append(UserSwapsKeyPrefix, user...)
}
