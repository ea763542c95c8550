package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

// NewQuerier routes the module's view queries. All views are pure reads
// with no authorization requirement.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case types.QuerySwap:
			return querySwap(ctx, path[1:], k, legacyQuerierCdc)
		case types.QuerySwapExists:
			return querySwapExists(ctx, path[1:], k, legacyQuerierCdc)
		case types.QueryUserSwaps:
			return queryUserSwaps(ctx, path[1:], k, legacyQuerierCdc)
		case types.QueryStats:
			return queryStats(ctx, k, legacyQuerierCdc)
		case types.QueryResolver:
			return queryResolver(ctx, path[1:], k, legacyQuerierCdc)
		default:
			return nil, sdkerrors.Wrapf(types.ErrSwapNotFound, "unknown %s query path: %s", types.ModuleName, path[0])
		}
	}
}

func querySwap(ctx sdk.Context, path []string, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	if len(path) == 0 {
		return nil, sdkerrors.Wrap(types.ErrSwapNotFound, "missing swap id")
	}
	swap, found := k.GetSwap(ctx, path[0])
	if !found {
		return nil, sdkerrors.Wrap(types.ErrSwapNotFound, path[0])
	}
	return legacyQuerierCdc.MarshalJSON(types.QuerySwapResponse{Swap: swap})
}

func querySwapExists(ctx sdk.Context, path []string, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	if len(path) == 0 {
		return nil, sdkerrors.Wrap(types.ErrSwapNotFound, "missing swap id")
	}
	return legacyQuerierCdc.MarshalJSON(types.QuerySwapExistsResponse{Exists: k.SwapExists(ctx, path[0])})
}

func queryUserSwaps(ctx sdk.Context, path []string, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	if len(path) == 0 {
		return nil, sdkerrors.Wrap(types.ErrInvalidRecipient, "missing user address")
	}
	user, err := sdk.AccAddressFromBech32(path[0])
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRecipient, err.Error())
	}
	return legacyQuerierCdc.MarshalJSON(types.QueryUserSwapsResponse{Ids: k.GetUserSwaps(ctx, user)})
}

func queryStats(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	stats, err := k.GetContractStats(ctx)
	if err != nil {
		return nil, err
	}
	return legacyQuerierCdc.MarshalJSON(types.QueryStatsResponse{Stats: stats})
}

func queryResolver(ctx sdk.Context, path []string, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	if len(path) == 0 {
		return nil, sdkerrors.Wrap(types.ErrResolverNotFound, "missing resolver address")
	}
	resolver, err := sdk.AccAddressFromBech32(path[0])
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrResolverNotFound, err.Error())
	}
	info, found := k.GetResolver(ctx, resolver)
	if !found {
		return nil, sdkerrors.Wrap(types.ErrResolverNotFound, path[0])
	}
	return legacyQuerierCdc.MarshalJSON(types.QueryResolverResponse{Info: info})
}
