package htlc

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/interchainx/htlc/x/htlc/keeper"
	"github.com/interchainx/htlc/x/htlc/types"
)

// NewHandler returns a handler for "htlc" type messages.
func NewHandler(k keeper.Keeper) sdk.Handler {
	msgServer := keeper.NewMsgServerImpl(k)

	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())
		goCtx := sdk.WrapSDKContext(ctx)

		var err error
		switch msg := msg.(type) {
		case *types.MsgInitialize:
			_, err = msgServer.Initialize(goCtx, msg)
		case *types.MsgCreateSwap:
			var res *types.MsgCreateSwapResponse
			if res, err = msgServer.CreateSwap(goCtx, msg); err == nil {
				return &sdk.Result{
					Data:   []byte(res.Id),
					Events: ctx.EventManager().ABCIEvents(),
				}, nil
			}
		case *types.MsgClaimSwap:
			_, err = msgServer.ClaimSwap(goCtx, msg)
		case *types.MsgRefundSwap:
			_, err = msgServer.RefundSwap(goCtx, msg)
		case *types.MsgMarkSwapFailed:
			_, err = msgServer.MarkSwapFailed(goCtx, msg)
		case *types.MsgRegisterResolver:
			_, err = msgServer.RegisterResolver(goCtx, msg)
		case *types.MsgDeactivateResolver:
			_, err = msgServer.DeactivateResolver(goCtx, msg)
		case *types.MsgUpdateProtocolFee:
			_, err = msgServer.UpdateProtocolFee(goCtx, msg)
		case *types.MsgUpdateFeeRecipient:
			_, err = msgServer.UpdateFeeRecipient(goCtx, msg)
		default:
			return nil, sdkerrors.Wrapf(errortypes.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}

		if err != nil {
			return nil, err
		}
		return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
	}
}
