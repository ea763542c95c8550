package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/interchainx/htlc/x/htlc/types"
)

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Nil(t, gs.Params)
	require.Empty(t, gs.Swaps)
}

func TestGenesisValidate(t *testing.T) {
	params := types.NewParams(testAdmin, testRecipient, 100)
	swap := validSwap()

	gs := types.NewGenesisState(&params, []types.Swap{swap}, nil)
	gs.UserSwaps = []types.UserSwapIndex{{User: swap.Sender, Ids: []string{swap.Id}}}
	gs.SwapCounter = 1
	gs.TotalSwapsCreated = 1

	require.NoError(t, gs.Validate())
}

func TestGenesisValidateRejects(t *testing.T) {
	params := types.NewParams(testAdmin, testRecipient, 100)
	swap := validSwap()

	cases := []struct {
		name   string
		mutate func(*types.GenesisState)
	}{
		{"bad params", func(gs *types.GenesisState) {
			bad := types.NewParams(testAdmin, testRecipient, types.MaxProtocolFeeBps+1)
			gs.Params = &bad
		}},
		{"duplicate swap id", func(gs *types.GenesisState) {
			gs.Swaps = append(gs.Swaps, swap)
		}},
		{"invalid swap", func(gs *types.GenesisState) {
			broken := swap
			broken.Id = "other"
			broken.Amount = math.ZeroInt()
			gs.Swaps = append(gs.Swaps, broken)
		}},
		{"duplicate resolver", func(gs *types.GenesisState) {
			info := types.ResolverInfo{Resolver: testSender, CollateralDenom: "uatom", MinCollateral: math.NewInt(1)}
			gs.Resolvers = []types.ResolverInfo{info, info}
		}},
		{"user index with empty user", func(gs *types.GenesisState) {
			gs.UserSwaps = []types.UserSwapIndex{{Ids: []string{swap.Id}}}
		}},
		{"user index with unknown swap", func(gs *types.GenesisState) {
			gs.UserSwaps = []types.UserSwapIndex{{User: swap.Sender, Ids: []string{"ghost"}}}
		}},
		{"completed exceeds created", func(gs *types.GenesisState) {
			gs.TotalSwapsCompleted = gs.TotalSwapsCreated + 1
		}},
		{"negative fee total", func(gs *types.GenesisState) {
			gs.TotalFeesCollected = math.NewInt(-1)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.NewGenesisState(&params, []types.Swap{swap}, nil)
			gs.SwapCounter = 1
			gs.TotalSwapsCreated = 1
			tc.mutate(gs)
			require.Error(t, gs.Validate())
		})
	}
}
