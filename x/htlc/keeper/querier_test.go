package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/interchainx/htlc/x/htlc/keeper"
	"github.com/interchainx/htlc/x/htlc/types"
)

func setupQuerier(t *testing.T) (*testEnv, func(path ...string) ([]byte, error), *codec.LegacyAmino) {
	t.Helper()

	env := setupInitialized(t)
	cdc := codec.NewLegacyAmino()
	types.RegisterCodec(cdc)
	querier := keeper.NewQuerier(env.k, cdc)

	query := func(path ...string) ([]byte, error) {
		return querier(env.ctx, path, abci.RequestQuery{})
	}
	return env, query, cdc
}

func TestQuerySwap(t *testing.T) {
	env, query, cdc := setupQuerier(t)

	_, hashlock := preimageAndHashlock("query")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	bz, err := query(types.QuerySwap, id)
	require.NoError(t, err)

	var res types.QuerySwapResponse
	require.NoError(t, cdc.UnmarshalJSON(bz, &res))
	require.Equal(t, id, res.Swap.Id)
	require.Equal(t, types.StatusPending, res.Swap.Status)
}

func TestQuerySwapNotFound(t *testing.T) {
	_, query, _ := setupQuerier(t)

	_, err := query(types.QuerySwap, "deadbeef")
	require.ErrorIs(t, err, types.ErrSwapNotFound)
}

func TestQuerySwapExists(t *testing.T) {
	env, query, cdc := setupQuerier(t)

	_, hashlock := preimageAndHashlock("exists")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	bz, err := query(types.QuerySwapExists, id)
	require.NoError(t, err)

	var res types.QuerySwapExistsResponse
	require.NoError(t, cdc.UnmarshalJSON(bz, &res))
	require.True(t, res.Exists)

	bz, err = query(types.QuerySwapExists, "deadbeef")
	require.NoError(t, err)
	require.NoError(t, cdc.UnmarshalJSON(bz, &res))
	require.False(t, res.Exists)
}

func TestQueryUserSwaps(t *testing.T) {
	env, query, cdc := setupQuerier(t)

	_, hashlock := preimageAndHashlock("mine")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	bz, err := query(types.QueryUserSwaps, sender.String())
	require.NoError(t, err)

	var res types.QueryUserSwapsResponse
	require.NoError(t, cdc.UnmarshalJSON(bz, &res))
	require.Equal(t, []string{id}, res.Ids)
}

func TestQueryUserSwapsBadAddress(t *testing.T) {
	_, query, _ := setupQuerier(t)

	_, err := query(types.QueryUserSwaps, "not-bech32")
	require.Error(t, err)
}

func TestQueryStats(t *testing.T) {
	env, query, cdc := setupQuerier(t)

	_, hashlock := preimageAndHashlock("stats-query")
	_, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	bz, err := query(types.QueryStats)
	require.NoError(t, err)

	var res types.QueryStatsResponse
	require.NoError(t, cdc.UnmarshalJSON(bz, &res))
	require.Equal(t, uint64(1), res.Stats.TotalSwapsCreated)
	require.Equal(t, uint32(100), res.Stats.ProtocolFeeBps)
}

func TestQueryResolver(t *testing.T) {
	env, query, cdc := setupQuerier(t)

	collateral := sdk.NewCoin("uatom", math.NewInt(5_000))
	require.NoError(t, env.k.RegisterResolver(env.ctx, admin, resolverAddr, collateral))

	bz, err := query(types.QueryResolver, resolverAddr.String())
	require.NoError(t, err)

	var res types.QueryResolverResponse
	require.NoError(t, cdc.UnmarshalJSON(bz, &res))
	require.Equal(t, resolverAddr, res.Info.Resolver)
	require.True(t, res.Info.IsActive)
}

func TestQueryResolverNotFound(t *testing.T) {
	_, query, _ := setupQuerier(t)

	_, err := query(types.QueryResolver, resolverAddr.String())
	require.ErrorIs(t, err, types.ErrResolverNotFound)
}

func TestQueryUnknownPath(t *testing.T) {
	_, query, _ := setupQuerier(t)

	_, err := query("bogus")
	require.Error(t, err)
}
