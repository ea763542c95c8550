package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interchainx/htlc/x/htlc/keeper"
)

func TestSwapRecordsInvariant(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("invariant")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)
	require.NoError(t, env.k.ClaimSwap(env.ctx, id, preimage, recipient))

	_, broken := keeper.SwapRecordsInvariant(env.k)(env.ctx)
	require.False(t, broken)

	// claimed swap without a preimage is corrupt
	swap, _ := env.k.GetSwap(env.ctx, id)
	swap.Preimage = nil
	env.k.SetSwap(env.ctx, swap)

	_, broken = keeper.SwapRecordsInvariant(env.k)(env.ctx)
	require.True(t, broken)
}

func TestSwapCountersInvariant(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("counters")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)
	require.NoError(t, env.k.ClaimSwap(env.ctx, id, preimage, recipient))

	_, broken := keeper.SwapCountersInvariant(env.k)(env.ctx)
	require.False(t, broken)

	env.k.SetTotalSwapsCompleted(env.ctx, 5)
	_, broken = keeper.SwapCountersInvariant(env.k)(env.ctx)
	require.True(t, broken)
}

func TestCountersInvariantEmptyState(t *testing.T) {
	env := setupKeeper(t)

	_, broken := keeper.SwapCountersInvariant(env.k)(env.ctx)
	require.False(t, broken)
	_, broken = keeper.SwapRecordsInvariant(env.k)(env.ctx)
	require.False(t, broken)
}
