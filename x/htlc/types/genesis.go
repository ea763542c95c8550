package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UserSwapIndex is one user's swap ids in insertion order.
type UserSwapIndex struct {
	User sdk.AccAddress `json:"user" yaml:"user"`
	Ids  []string       `json:"ids" yaml:"ids"`
}

// GenesisState holds the full module state for export and import.
type GenesisState struct {
	// Params is nil when the module has not been initialized yet
	Params *Params `json:"params,omitempty" yaml:"params"`

	Swaps     []Swap          `json:"swaps" yaml:"swaps"`
	Resolvers []ResolverInfo  `json:"resolvers" yaml:"resolvers"`
	UserSwaps []UserSwapIndex `json:"user_swaps" yaml:"user_swaps"`

	SwapCounter         uint64   `json:"swap_counter" yaml:"swap_counter"`
	TotalSwapsCreated   uint64   `json:"total_swaps_created" yaml:"total_swaps_created"`
	TotalSwapsCompleted uint64   `json:"total_swaps_completed" yaml:"total_swaps_completed"`
	TotalFeesCollected  math.Int `json:"total_fees_collected" yaml:"total_fees_collected"`
}

// NewGenesisState constructs a genesis state.
func NewGenesisState(params *Params, swaps []Swap, resolvers []ResolverInfo) *GenesisState {
	return &GenesisState{
		Params:             params,
		Swaps:              swaps,
		Resolvers:          resolvers,
		UserSwaps:          []UserSwapIndex{},
		TotalFeesCollected: math.ZeroInt(),
	}
}

// DefaultGenesis returns the genesis state of an uninitialized module.
func DefaultGenesis() *GenesisState {
	return NewGenesisState(nil, []Swap{}, []ResolverInfo{})
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if gs.Params != nil {
		if err := gs.Params.Validate(); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(gs.Swaps))
	for _, swap := range gs.Swaps {
		if _, ok := seen[swap.Id]; ok {
			return fmt.Errorf("duplicate swap id %s", swap.Id)
		}
		seen[swap.Id] = struct{}{}
		if err := swap.Validate(); err != nil {
			return err
		}
	}

	seenResolvers := make(map[string]struct{}, len(gs.Resolvers))
	for _, resolver := range gs.Resolvers {
		key := resolver.Resolver.String()
		if _, ok := seenResolvers[key]; ok {
			return fmt.Errorf("duplicate resolver %s", key)
		}
		seenResolvers[key] = struct{}{}
		if err := resolver.Validate(); err != nil {
			return err
		}
	}

	for _, index := range gs.UserSwaps {
		if index.User.Empty() {
			return fmt.Errorf("user swap index with empty user")
		}
		for _, id := range index.Ids {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("user %s indexes unknown swap %s", index.User, id)
			}
		}
	}

	if gs.TotalSwapsCreated < gs.TotalSwapsCompleted {
		return fmt.Errorf("completed swaps %d exceed created swaps %d", gs.TotalSwapsCompleted, gs.TotalSwapsCreated)
	}
	if gs.TotalFeesCollected.IsNil() || gs.TotalFeesCollected.IsNegative() {
		return fmt.Errorf("total fees collected must be non-negative")
	}
	return nil
}
