package keeper

import (
	"encoding/binary"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

// Keeper owns the swap registry, the resolver registry and the module
// configuration. All state lives in a single KV store partitioned by the
// key prefixes in types/keys.go.
type Keeper struct {
	cdc        *codec.LegacyAmino
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
}

// NewKeeper creates a new HTLC keeper.
func NewKeeper(cdc *codec.LegacyAmino, storeKey storetypes.StoreKey, bankKeeper types.BankKeeper) Keeper {
	return Keeper{
		cdc:        cdc,
		storeKey:   storeKey,
		bankKeeper: bankKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// ---- configuration

// GetParams returns the module configuration and whether it has been set.
func (k Keeper) GetParams(ctx sdk.Context) (types.Params, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.Params{}, false
	}
	var params types.Params
	k.cdc.MustUnmarshalJSON(bz, &params)
	return params, true
}

// SetParams stores the module configuration.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ParamsKey, k.cdc.MustMarshalJSON(params))
}

// Initialize sets the admin, fee recipient and protocol fee. It fails if
// the module was already initialized; the caller must be the named admin
// (enforced by the msg server signer check).
func (k Keeper) Initialize(ctx sdk.Context, admin, feeRecipient sdk.AccAddress, feeBps uint32) error {
	if _, ok := k.GetParams(ctx); ok {
		return types.ErrAlreadyInitialized
	}
	if feeBps > types.MaxProtocolFeeBps {
		return sdkerrors.Wrapf(types.ErrInvalidFee, "%d bps exceeds maximum %d", feeBps, types.MaxProtocolFeeBps)
	}

	k.SetParams(ctx, types.NewParams(admin, feeRecipient, feeBps))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeContractInitialized,
			sdk.NewAttribute(types.AttributeKeyAdmin, admin.String()),
			sdk.NewAttribute(types.AttributeKeyFeeRecipient, feeRecipient.String()),
			sdk.NewAttribute(types.AttributeKeyFeeBps, fmt.Sprintf("%d", feeBps)),
		),
	)

	k.Logger(ctx).Info("module initialized", "admin", admin.String(), "fee_bps", feeBps)
	return nil
}

// UpdateProtocolFee changes the protocol fee, admin only.
func (k Keeper) UpdateProtocolFee(ctx sdk.Context, admin sdk.AccAddress, newFeeBps uint32) error {
	params, err := k.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if newFeeBps > types.MaxProtocolFeeBps {
		return sdkerrors.Wrapf(types.ErrInvalidFee, "%d bps exceeds maximum %d", newFeeBps, types.MaxProtocolFeeBps)
	}

	oldFee := params.ProtocolFeeBps
	params.ProtocolFeeBps = newFeeBps
	k.SetParams(ctx, params)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProtocolFeeUpdated,
			sdk.NewAttribute(types.AttributeKeyOldFeeBps, fmt.Sprintf("%d", oldFee)),
			sdk.NewAttribute(types.AttributeKeyNewFeeBps, fmt.Sprintf("%d", newFeeBps)),
		),
	)
	return nil
}

// UpdateFeeRecipient changes the fee recipient, admin only.
func (k Keeper) UpdateFeeRecipient(ctx sdk.Context, admin, newRecipient sdk.AccAddress) error {
	params, err := k.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}

	oldRecipient := params.FeeRecipient
	params.FeeRecipient = newRecipient
	k.SetParams(ctx, params)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeRecipientUpdated,
			sdk.NewAttribute(types.AttributeKeyOldRecipient, oldRecipient.String()),
			sdk.NewAttribute(types.AttributeKeyNewRecipient, newRecipient.String()),
		),
	)
	return nil
}

// requireAdmin loads the params and checks the caller against the admin.
func (k Keeper) requireAdmin(ctx sdk.Context, caller sdk.AccAddress) (types.Params, error) {
	params, ok := k.GetParams(ctx)
	if !ok {
		return types.Params{}, types.ErrNotInitialized
	}
	if !caller.Equals(params.Admin) {
		return types.Params{}, sdkerrors.Wrapf(types.ErrUnauthorized, "%s is not the admin", caller)
	}
	return params, nil
}

// ---- counters

func (k Keeper) getCounter(ctx sdk.Context, key []byte) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(key)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setCounter(ctx sdk.Context, key []byte, value uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, value)
	store.Set(key, bz)
}

// GetSwapCounter returns the monotonically increasing swap counter used in
// id derivation.
func (k Keeper) GetSwapCounter(ctx sdk.Context) uint64 {
	return k.getCounter(ctx, types.SwapCounterKey)
}

// SetSwapCounter writes the swap counter, used by genesis import.
func (k Keeper) SetSwapCounter(ctx sdk.Context, value uint64) {
	k.setCounter(ctx, types.SwapCounterKey, value)
}

func (k Keeper) incrementSwapCounter(ctx sdk.Context) uint64 {
	next := k.GetSwapCounter(ctx) + 1
	k.SetSwapCounter(ctx, next)
	return next
}

// GetTotalSwapsCreated returns the lifetime swap creation count.
func (k Keeper) GetTotalSwapsCreated(ctx sdk.Context) uint64 {
	return k.getCounter(ctx, types.TotalSwapsCreatedKey)
}

// SetTotalSwapsCreated writes the creation counter, used by genesis import.
func (k Keeper) SetTotalSwapsCreated(ctx sdk.Context, value uint64) {
	k.setCounter(ctx, types.TotalSwapsCreatedKey, value)
}

// GetTotalSwapsCompleted returns the lifetime claim count.
func (k Keeper) GetTotalSwapsCompleted(ctx sdk.Context) uint64 {
	return k.getCounter(ctx, types.TotalSwapsCompletedKey)
}

// SetTotalSwapsCompleted writes the completion counter, used by genesis
// import.
func (k Keeper) SetTotalSwapsCompleted(ctx sdk.Context, value uint64) {
	k.setCounter(ctx, types.TotalSwapsCompletedKey, value)
}

// GetTotalFeesCollected returns the running protocol fee total.
func (k Keeper) GetTotalFeesCollected(ctx sdk.Context) math.Int {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.TotalFeesCollectedKey)
	if bz == nil {
		return math.ZeroInt()
	}
	var total math.Int
	if err := total.Unmarshal(bz); err != nil {
		panic(err)
	}
	return total
}

// SetTotalFeesCollected writes the fee total, used by genesis import.
func (k Keeper) SetTotalFeesCollected(ctx sdk.Context, total math.Int) {
	store := ctx.KVStore(k.storeKey)
	bz, err := total.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(types.TotalFeesCollectedKey, bz)
}

func (k Keeper) addFeesCollected(ctx sdk.Context, fee math.Int) {
	k.SetTotalFeesCollected(ctx, k.GetTotalFeesCollected(ctx).Add(fee))
}

// GetContractStats assembles the derived aggregate view. It never writes;
// the counters it reads are maintained by the state transitions.
func (k Keeper) GetContractStats(ctx sdk.Context) (types.ContractStats, error) {
	params, ok := k.GetParams(ctx)
	if !ok {
		return types.ContractStats{}, types.ErrNotInitialized
	}
	return types.ContractStats{
		TotalSwapsCreated:   k.GetTotalSwapsCreated(ctx),
		TotalSwapsCompleted: k.GetTotalSwapsCompleted(ctx),
		TotalFeesCollected:  k.GetTotalFeesCollected(ctx),
		ProtocolFeeBps:      params.ProtocolFeeBps,
		Admin:               params.Admin,
		FeeRecipient:        params.FeeRecipient,
	}, nil
}
