package htlc

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/keeper"
	"github.com/interchainx/htlc/x/htlc/types"
)

// InitGenesis imports the module state. A nil Params leaves the module
// uninitialized; MsgInitialize must then be submitted before any swap can
// be created.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if genState.Params != nil {
		k.SetParams(ctx, *genState.Params)
	}

	for _, swap := range genState.Swaps {
		k.SetSwap(ctx, swap)
	}
	for _, info := range genState.Resolvers {
		k.SetResolver(ctx, info)
	}
	for _, index := range genState.UserSwaps {
		k.SetUserSwaps(ctx, index.User, index.Ids)
	}

	k.SetSwapCounter(ctx, genState.SwapCounter)
	k.SetTotalSwapsCreated(ctx, genState.TotalSwapsCreated)
	k.SetTotalSwapsCompleted(ctx, genState.TotalSwapsCompleted)
	k.SetTotalFeesCollected(ctx, genState.TotalFeesCollected)
}

// ExportGenesis exports the full module state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genState := types.DefaultGenesis()

	if params, ok := k.GetParams(ctx); ok {
		genState.Params = &params
	}

	k.IterateSwaps(ctx, func(swap types.Swap) bool {
		genState.Swaps = append(genState.Swaps, swap)
		return false
	})
	k.IterateResolvers(ctx, func(info types.ResolverInfo) bool {
		genState.Resolvers = append(genState.Resolvers, info)
		return false
	})
	k.IterateUserSwaps(ctx, func(user sdk.AccAddress, ids []string) bool {
		genState.UserSwaps = append(genState.UserSwaps, types.UserSwapIndex{User: user, Ids: ids})
		return false
	})

	genState.SwapCounter = k.GetSwapCounter(ctx)
	genState.TotalSwapsCreated = k.GetTotalSwapsCreated(ctx)
	genState.TotalSwapsCompleted = k.GetTotalSwapsCompleted(ctx)
	genState.TotalFeesCollected = k.GetTotalFeesCollected(ctx)

	return genState
}
