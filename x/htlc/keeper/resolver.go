package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

// GetResolver returns a resolver record by address.
func (k Keeper) GetResolver(ctx sdk.Context, resolver sdk.AccAddress) (types.ResolverInfo, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetResolverKey(resolver))
	if bz == nil {
		return types.ResolverInfo{}, false
	}
	var info types.ResolverInfo
	k.cdc.MustUnmarshalJSON(bz, &info)
	return info, true
}

// SetResolver stores a resolver record.
func (k Keeper) SetResolver(ctx sdk.Context, info types.ResolverInfo) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetResolverKey(info.Resolver), k.cdc.MustMarshalJSON(info))
}

// IterateResolvers walks all resolver records, stopping when cb returns
// true.
func (k Keeper) IterateResolvers(ctx sdk.Context, cb func(info types.ResolverInfo) bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.ResolverKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var info types.ResolverInfo
		k.cdc.MustUnmarshalJSON(iterator.Value(), &info)
		if cb(info) {
			break
		}
	}
}

// IsResolverActive reports whether a resolver exists and is active.
func (k Keeper) IsResolverActive(ctx sdk.Context, resolver sdk.AccAddress) bool {
	info, found := k.GetResolver(ctx, resolver)
	return found && info.IsActive
}

// RegisterResolver registers a facilitator, admin only. Registering an
// existing resolver overwrites the record and resets its counters.
func (k Keeper) RegisterResolver(ctx sdk.Context, admin, resolver sdk.AccAddress, minCollateral sdk.Coin) error {
	if _, err := k.requireAdmin(ctx, admin); err != nil {
		return err
	}
	if !minCollateral.IsPositive() {
		return sdkerrors.Wrap(types.ErrInsufficientCollateral, minCollateral.String())
	}

	k.SetResolver(ctx, types.ResolverInfo{
		Resolver:        resolver,
		CollateralDenom: minCollateral.Denom,
		MinCollateral:   minCollateral.Amount,
		IsActive:        true,
		CreatedAt:       ctx.BlockTime().Unix(),
	})

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResolverRegistered,
			sdk.NewAttribute(types.AttributeKeyResolver, resolver.String()),
			sdk.NewAttribute(types.AttributeKeyCollateral, minCollateral.String()),
		),
	)

	k.Logger(ctx).Info("resolver registered", "resolver", resolver.String())
	return nil
}

// DeactivateResolver flips a resolver inactive, admin only. History and
// counters are kept; the record is never deleted.
func (k Keeper) DeactivateResolver(ctx sdk.Context, admin, resolver sdk.AccAddress) error {
	if _, err := k.requireAdmin(ctx, admin); err != nil {
		return err
	}

	info, found := k.GetResolver(ctx, resolver)
	if !found {
		return sdkerrors.Wrap(types.ErrResolverNotFound, resolver.String())
	}

	info.IsActive = false
	k.SetResolver(ctx, info)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResolverDeactivated,
			sdk.NewAttribute(types.AttributeKeyResolver, resolver.String()),
		),
	)

	k.Logger(ctx).Info("resolver deactivated", "resolver", resolver.String())
	return nil
}

func (k Keeper) incrementResolverSwaps(ctx sdk.Context, resolver sdk.AccAddress) {
	if info, found := k.GetResolver(ctx, resolver); found {
		info.TotalSwaps++
		k.SetResolver(ctx, info)
	}
}

func (k Keeper) incrementResolverResolved(ctx sdk.Context, resolver sdk.AccAddress) {
	if info, found := k.GetResolver(ctx, resolver); found {
		info.TotalResolved++
		k.SetResolver(ctx, info)
	}
}
