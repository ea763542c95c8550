package types

import (
	"context"
)

// Msg service responses.
type (
	MsgInitializeResponse         struct{}
	MsgClaimSwapResponse          struct{}
	MsgRefundSwapResponse         struct{}
	MsgMarkSwapFailedResponse     struct{}
	MsgRegisterResolverResponse   struct{}
	MsgDeactivateResolverResponse struct{}
	MsgUpdateProtocolFeeResponse  struct{}
	MsgUpdateFeeRecipientResponse struct{}
)

// MsgCreateSwapResponse returns the derived swap id for use in later
// claim/refund calls.
type MsgCreateSwapResponse struct {
	Id string `json:"id" yaml:"id"`
}

// MsgServer is the module's message service.
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	CreateSwap(context.Context, *MsgCreateSwap) (*MsgCreateSwapResponse, error)
	ClaimSwap(context.Context, *MsgClaimSwap) (*MsgClaimSwapResponse, error)
	RefundSwap(context.Context, *MsgRefundSwap) (*MsgRefundSwapResponse, error)
	MarkSwapFailed(context.Context, *MsgMarkSwapFailed) (*MsgMarkSwapFailedResponse, error)
	RegisterResolver(context.Context, *MsgRegisterResolver) (*MsgRegisterResolverResponse, error)
	DeactivateResolver(context.Context, *MsgDeactivateResolver) (*MsgDeactivateResolverResponse, error)
	UpdateProtocolFee(context.Context, *MsgUpdateProtocolFee) (*MsgUpdateProtocolFeeResponse, error)
	UpdateFeeRecipient(context.Context, *MsgUpdateFeeRecipient) (*MsgUpdateFeeRecipientResponse, error)
}
