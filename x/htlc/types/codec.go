package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's concrete types on the amino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitialize{}, "htlc/Initialize", nil)
	cdc.RegisterConcrete(&MsgCreateSwap{}, "htlc/CreateSwap", nil)
	cdc.RegisterConcrete(&MsgClaimSwap{}, "htlc/ClaimSwap", nil)
	cdc.RegisterConcrete(&MsgRefundSwap{}, "htlc/RefundSwap", nil)
	cdc.RegisterConcrete(&MsgMarkSwapFailed{}, "htlc/MarkSwapFailed", nil)
	cdc.RegisterConcrete(&MsgRegisterResolver{}, "htlc/RegisterResolver", nil)
	cdc.RegisterConcrete(&MsgDeactivateResolver{}, "htlc/DeactivateResolver", nil)
	cdc.RegisterConcrete(&MsgUpdateProtocolFee{}, "htlc/UpdateProtocolFee", nil)
	cdc.RegisterConcrete(&MsgUpdateFeeRecipient{}, "htlc/UpdateFeeRecipient", nil)
}

// RegisterInterfaces registers the module's messages as sdk.Msg
// implementations.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitialize{},
		&MsgCreateSwap{},
		&MsgClaimSwap{},
		&MsgRefundSwap{},
		&MsgMarkSwapFailed{},
		&MsgRegisterResolver{},
		&MsgDeactivateResolver{},
		&MsgUpdateProtocolFee{},
		&MsgUpdateFeeRecipient{},
	)
}

// ModuleCdc is the module's amino codec, used for sign bytes and for store
// value encoding of the hand-written types.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	sdk.RegisterLegacyAminoCodec(ModuleCdc)
}
