package keeper

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

// GetSwap returns a swap by id.
func (k Keeper) GetSwap(ctx sdk.Context, id string) (types.Swap, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetSwapKey(id))
	if bz == nil {
		return types.Swap{}, false
	}
	var swap types.Swap
	k.cdc.MustUnmarshalJSON(bz, &swap)
	return swap, true
}

// SetSwap stores a swap record.
func (k Keeper) SetSwap(ctx sdk.Context, swap types.Swap) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetSwapKey(swap.Id), k.cdc.MustMarshalJSON(swap))
}

// SwapExists reports whether a swap id is present.
func (k Keeper) SwapExists(ctx sdk.Context, id string) bool {
	return ctx.KVStore(k.storeKey).Has(types.GetSwapKey(id))
}

// IterateSwaps walks all swaps, stopping when cb returns true.
func (k Keeper) IterateSwaps(ctx sdk.Context, cb func(swap types.Swap) bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.SwapKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var swap types.Swap
		k.cdc.MustUnmarshalJSON(iterator.Value(), &swap)
		if cb(swap) {
			break
		}
	}
}

// GetUserSwaps returns a user's swap ids in insertion order.
func (k Keeper) GetUserSwaps(ctx sdk.Context, user sdk.AccAddress) []string {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetUserSwapsKey(user))
	if bz == nil {
		return []string{}
	}
	var ids []string
	k.cdc.MustUnmarshalJSON(bz, &ids)
	return ids
}

// SetUserSwaps writes a user's swap id index, used by genesis import.
func (k Keeper) SetUserSwaps(ctx sdk.Context, user sdk.AccAddress, ids []string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetUserSwapsKey(user), k.cdc.MustMarshalJSON(ids))
}

// IterateUserSwaps walks all user swap indexes, stopping when cb returns
// true.
func (k Keeper) IterateUserSwaps(ctx sdk.Context, cb func(user sdk.AccAddress, ids []string) bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.UserSwapsKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var ids []string
		k.cdc.MustUnmarshalJSON(iterator.Value(), &ids)
		if cb(sdk.AccAddress(iterator.Key()), ids) {
			break
		}
	}
}

func (k Keeper) appendUserSwap(ctx sdk.Context, user sdk.AccAddress, id string) {
	k.SetUserSwaps(ctx, user, append(k.GetUserSwaps(ctx, user), id))
}

// CreateSwap validates the request, escrows the gross amount, forwards the
// protocol fee and stores a new pending swap. It returns the derived swap
// id. The sender was authenticated as the message signer.
func (k Keeper) CreateSwap(ctx sdk.Context, msg *types.MsgCreateSwap) (string, error) {
	params, ok := k.GetParams(ctx)
	if !ok {
		return "", types.ErrNotInitialized
	}

	if !msg.Amount.IsPositive() {
		return "", sdkerrors.Wrap(types.ErrInvalidAmount, msg.Amount.String())
	}

	now := uint64(ctx.BlockTime().Unix())
	if msg.Timelock <= now+types.MinTimelockDuration {
		return "", sdkerrors.Wrapf(types.ErrInvalidTimelock, "timelock %d must exceed now+%ds", msg.Timelock, types.MinTimelockDuration)
	}
	if msg.Timelock > now+types.MaxTimelockDuration {
		return "", sdkerrors.Wrapf(types.ErrInvalidTimelock, "timelock %d must not exceed now+%ds", msg.Timelock, types.MaxTimelockDuration)
	}

	if !msg.Resolver.Empty() {
		info, found := k.GetResolver(ctx, msg.Resolver)
		if !found || !info.IsActive {
			return "", sdkerrors.Wrap(types.ErrResolverNotActive, msg.Resolver.String())
		}
	}

	counter := k.incrementSwapCounter(ctx)
	id := deriveSwapID(counter, now, msg)

	// An id collision is a correctness violation, never retried silently.
	if k.SwapExists(ctx, id) {
		return "", sdkerrors.Wrap(types.ErrSwapAlreadyExists, id)
	}

	net, fee := types.SplitProtocolFee(msg.Amount.Amount, params.ProtocolFeeBps)

	// Escrow the gross amount, then forward the fee cut. Both moves are
	// part of the same transaction as the state write below.
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, msg.Sender, types.ModuleName, sdk.NewCoins(msg.Amount)); err != nil {
		return "", sdkerrors.Wrap(types.ErrTokenTransferFailed, err.Error())
	}
	if fee.IsPositive() {
		feeCoins := sdk.NewCoins(sdk.NewCoin(msg.Amount.Denom, fee))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, params.FeeRecipient, feeCoins); err != nil {
			return "", sdkerrors.Wrap(types.ErrTokenTransferFailed, err.Error())
		}
		k.addFeesCollected(ctx, fee)
	}

	swap := types.Swap{
		Id:          id,
		Sender:      msg.Sender,
		Recipient:   msg.Recipient,
		Token:       msg.Amount.Denom,
		Amount:      net,
		Hashlock:    msg.Hashlock,
		Timelock:    msg.Timelock,
		Status:      types.StatusPending,
		CreatedAt:   ctx.BlockTime().Unix(),
		EthContract: msg.EthContract,
		EthChainId:  msg.EthChainId,
		EthTxHash:   msg.EthTxHash,
		Resolver:    msg.Resolver,
	}

	k.SetSwap(ctx, swap)
	k.appendUserSwap(ctx, msg.Sender, id)
	k.SetTotalSwapsCreated(ctx, k.GetTotalSwapsCreated(ctx)+1)
	if !msg.Resolver.Empty() {
		k.incrementResolverSwaps(ctx, msg.Resolver)
	}

	event := sdk.NewEvent(
		types.EventTypeSwapInitialized,
		sdk.NewAttribute(types.AttributeKeySwapID, id),
		sdk.NewAttribute(types.AttributeKeySender, msg.Sender.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, msg.Recipient.String()),
		sdk.NewAttribute(types.AttributeKeyToken, msg.Amount.Denom),
		sdk.NewAttribute(types.AttributeKeyAmount, net.String()),
		sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		sdk.NewAttribute(types.AttributeKeyHashlock, hex.EncodeToString(msg.Hashlock)),
		sdk.NewAttribute(types.AttributeKeyTimelock, fmt.Sprintf("%d", msg.Timelock)),
	)
	if !msg.Resolver.Empty() {
		event = event.AppendAttributes(sdk.NewAttribute(types.AttributeKeyResolver, msg.Resolver.String()))
	}
	if msg.EthTxHash != "" {
		event = event.AppendAttributes(sdk.NewAttribute(types.AttributeKeyEthTxHash, msg.EthTxHash))
	}
	ctx.EventManager().EmitEvent(event)

	k.Logger(ctx).Debug("swap created", "id", id, "sender", msg.Sender.String(), "amount", net.String())
	return id, nil
}

// ClaimSwap pays out an escrowed swap to its recipient in exchange for the
// hashlock preimage. The preimage is verified before the claimant identity
// so that a bad preimage is rejected uniformly regardless of the caller.
func (k Keeper) ClaimSwap(ctx sdk.Context, id string, preimage []byte, claimer sdk.AccAddress) error {
	swap, found := k.GetSwap(ctx, id)
	if !found {
		return sdkerrors.Wrap(types.ErrSwapNotFound, id)
	}
	if swap.Status == types.StatusClaimed {
		return sdkerrors.Wrap(types.ErrAlreadyClaimed, id)
	}
	if swap.Status == types.StatusRefunded {
		return sdkerrors.Wrap(types.ErrAlreadyRefunded, id)
	}

	now := uint64(ctx.BlockTime().Unix())
	if now >= swap.Timelock {
		return sdkerrors.Wrapf(types.ErrTimelockExpired, "timelock %d passed at %d", swap.Timelock, now)
	}

	if !types.VerifyPreimage(preimage, swap.Hashlock) {
		return types.ErrInvalidPreimage
	}

	if !claimer.Equals(swap.Recipient) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "%s is not the swap recipient", claimer)
	}

	// Pay out before committing the transition so a transfer failure
	// leaves the swap observable as pending.
	coins := sdk.NewCoins(sdk.NewCoin(swap.Token, swap.Amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, swap.Recipient, coins); err != nil {
		return sdkerrors.Wrap(types.ErrTokenTransferFailed, err.Error())
	}

	oldStatus := swap.Status
	swap.Status = types.StatusClaimed
	swap.ClaimedAt = ctx.BlockTime().Unix()
	swap.Preimage = preimage
	k.SetSwap(ctx, swap)

	k.SetTotalSwapsCompleted(ctx, k.GetTotalSwapsCompleted(ctx)+1)
	if !swap.Resolver.Empty() {
		k.incrementResolverResolved(ctx, swap.Resolver)
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeFundsClaimed,
			sdk.NewAttribute(types.AttributeKeySwapID, id),
			sdk.NewAttribute(types.AttributeKeyRecipient, swap.Recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, swap.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyPreimage, hex.EncodeToString(preimage)),
		),
		statusUpdateEvent(id, oldStatus, types.StatusClaimed),
	})

	k.Logger(ctx).Debug("swap claimed", "id", id, "recipient", swap.Recipient.String())
	return nil
}

// RefundSwap returns escrowed funds to the sender once the timelock has
// expired. A swap marked failed stays refundable so funds are never
// stranded.
func (k Keeper) RefundSwap(ctx sdk.Context, id string, refunder sdk.AccAddress) error {
	swap, found := k.GetSwap(ctx, id)
	if !found {
		return sdkerrors.Wrap(types.ErrSwapNotFound, id)
	}
	if swap.Status == types.StatusClaimed {
		return sdkerrors.Wrap(types.ErrAlreadyClaimed, id)
	}
	if swap.Status == types.StatusRefunded {
		return sdkerrors.Wrap(types.ErrAlreadyRefunded, id)
	}

	now := uint64(ctx.BlockTime().Unix())
	if now < swap.Timelock {
		return sdkerrors.Wrapf(types.ErrTimelockNotExpired, "timelock %d not reached at %d", swap.Timelock, now)
	}

	if !refunder.Equals(swap.Sender) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "%s is not the swap sender", refunder)
	}

	coins := sdk.NewCoins(sdk.NewCoin(swap.Token, swap.Amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, swap.Sender, coins); err != nil {
		return sdkerrors.Wrap(types.ErrTokenTransferFailed, err.Error())
	}

	oldStatus := swap.Status
	swap.Status = types.StatusRefunded
	swap.RefundedAt = ctx.BlockTime().Unix()
	k.SetSwap(ctx, swap)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeFundsRefunded,
			sdk.NewAttribute(types.AttributeKeySwapID, id),
			sdk.NewAttribute(types.AttributeKeySender, swap.Sender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, swap.Amount.String()),
		),
		statusUpdateEvent(id, oldStatus, types.StatusRefunded),
	})

	k.Logger(ctx).Debug("swap refunded", "id", id, "sender", swap.Sender.String())
	return nil
}

// MarkSwapFailed flags a swap as abandoned for off-chain reconciliation.
// Admin only; it moves no funds and does not count as completion. Claim
// and refund remain possible in their time windows afterwards.
func (k Keeper) MarkSwapFailed(ctx sdk.Context, id string, admin sdk.AccAddress, reason string) error {
	if _, err := k.requireAdmin(ctx, admin); err != nil {
		return err
	}

	swap, found := k.GetSwap(ctx, id)
	if !found {
		return sdkerrors.Wrap(types.ErrSwapNotFound, id)
	}
	if swap.Status == types.StatusClaimed {
		return sdkerrors.Wrap(types.ErrAlreadyClaimed, id)
	}
	if swap.Status == types.StatusRefunded {
		return sdkerrors.Wrap(types.ErrAlreadyRefunded, id)
	}

	oldStatus := swap.Status
	swap.Status = types.StatusFailed
	k.SetSwap(ctx, swap)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSwapFailed,
			sdk.NewAttribute(types.AttributeKeySwapID, id),
			sdk.NewAttribute(types.AttributeKeySender, swap.Sender.String()),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
		statusUpdateEvent(id, oldStatus, types.StatusFailed),
	})

	k.Logger(ctx).Info("swap marked failed", "id", id, "reason", reason)
	return nil
}

func statusUpdateEvent(id string, oldStatus, newStatus types.SwapStatus) sdk.Event {
	return sdk.NewEvent(
		types.EventTypeSwapStatusUpdated,
		sdk.NewAttribute(types.AttributeKeySwapID, id),
		sdk.NewAttribute(types.AttributeKeyOldStatus, oldStatus.String()),
		sdk.NewAttribute(types.AttributeKeyNewStatus, newStatus.String()),
	)
}

// deriveSwapID mixes the swap counter, block time and all economic
// parameters through SHA-256 so that two swaps with identical parameters in
// the same block still receive distinct identifiers.
func deriveSwapID(counter, now uint64, msg *types.MsgCreateSwap) string {
	buf := make([]byte, 0, 128)

	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], counter)
	buf = append(buf, scratch[:]...)
	binary.BigEndian.PutUint64(scratch[:], now)
	buf = append(buf, scratch[:]...)
	binary.BigEndian.PutUint64(scratch[:], msg.Timelock)
	buf = append(buf, scratch[:]...)

	buf = append(buf, msg.Sender.Bytes()...)
	buf = append(buf, msg.Recipient.Bytes()...)
	buf = append(buf, []byte(msg.Amount.Denom)...)
	buf = append(buf, []byte(msg.Amount.Amount.String())...)
	buf = append(buf, msg.Hashlock...)

	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
