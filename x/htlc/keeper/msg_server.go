package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the module MsgServer backed by a keeper. The
// host chain's signature verification guarantees the actor address carried
// by each message was authenticated; the keeper compares it against the
// record it acts on.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.Initialize(ctx, msg.Admin, msg.FeeRecipient, msg.ProtocolFeeBps); err != nil {
		return nil, err
	}
	return &types.MsgInitializeResponse{}, nil
}

func (k msgServer) CreateSwap(goCtx context.Context, msg *types.MsgCreateSwap) (*types.MsgCreateSwapResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	id, err := k.Keeper.CreateSwap(ctx, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateSwapResponse{Id: id}, nil
}

func (k msgServer) ClaimSwap(goCtx context.Context, msg *types.MsgClaimSwap) (*types.MsgClaimSwapResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.ClaimSwap(ctx, msg.SwapId, msg.Preimage, msg.Claimer); err != nil {
		return nil, err
	}
	return &types.MsgClaimSwapResponse{}, nil
}

func (k msgServer) RefundSwap(goCtx context.Context, msg *types.MsgRefundSwap) (*types.MsgRefundSwapResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.RefundSwap(ctx, msg.SwapId, msg.Sender); err != nil {
		return nil, err
	}
	return &types.MsgRefundSwapResponse{}, nil
}

func (k msgServer) MarkSwapFailed(goCtx context.Context, msg *types.MsgMarkSwapFailed) (*types.MsgMarkSwapFailedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.MarkSwapFailed(ctx, msg.SwapId, msg.Admin, msg.Reason); err != nil {
		return nil, err
	}
	return &types.MsgMarkSwapFailedResponse{}, nil
}

func (k msgServer) RegisterResolver(goCtx context.Context, msg *types.MsgRegisterResolver) (*types.MsgRegisterResolverResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.RegisterResolver(ctx, msg.Admin, msg.Resolver, msg.MinCollateral); err != nil {
		return nil, err
	}
	return &types.MsgRegisterResolverResponse{}, nil
}

func (k msgServer) DeactivateResolver(goCtx context.Context, msg *types.MsgDeactivateResolver) (*types.MsgDeactivateResolverResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.DeactivateResolver(ctx, msg.Admin, msg.Resolver); err != nil {
		return nil, err
	}
	return &types.MsgDeactivateResolverResponse{}, nil
}

func (k msgServer) UpdateProtocolFee(goCtx context.Context, msg *types.MsgUpdateProtocolFee) (*types.MsgUpdateProtocolFeeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.UpdateProtocolFee(ctx, msg.Admin, msg.NewFeeBps); err != nil {
		return nil, err
	}
	return &types.MsgUpdateProtocolFeeResponse{}, nil
}

func (k msgServer) UpdateFeeRecipient(goCtx context.Context, msg *types.MsgUpdateFeeRecipient) (*types.MsgUpdateFeeRecipientResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.UpdateFeeRecipient(ctx, msg.Admin, msg.NewRecipient); err != nil {
		return nil, err
	}
	return &types.MsgUpdateFeeRecipientResponse{}, nil
}
