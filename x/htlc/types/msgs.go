package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type action names.
const (
	TypeMsgInitialize         = "initialize"
	TypeMsgCreateSwap         = "create_swap"
	TypeMsgClaimSwap          = "claim_swap"
	TypeMsgRefundSwap         = "refund_swap"
	TypeMsgMarkSwapFailed     = "mark_swap_failed"
	TypeMsgRegisterResolver   = "register_resolver"
	TypeMsgDeactivateResolver = "deactivate_resolver"
	TypeMsgUpdateProtocolFee  = "update_protocol_fee"
	TypeMsgUpdateFeeRecipient = "update_fee_recipient"
)

var (
	_ sdk.Msg = &MsgInitialize{}
	_ sdk.Msg = &MsgCreateSwap{}
	_ sdk.Msg = &MsgClaimSwap{}
	_ sdk.Msg = &MsgRefundSwap{}
	_ sdk.Msg = &MsgMarkSwapFailed{}
	_ sdk.Msg = &MsgRegisterResolver{}
	_ sdk.Msg = &MsgDeactivateResolver{}
	_ sdk.Msg = &MsgUpdateProtocolFee{}
	_ sdk.Msg = &MsgUpdateFeeRecipient{}
)

// MsgInitialize sets the initial module configuration. It may succeed only
// once; the signer must be the intended admin.
type MsgInitialize struct {
	Admin          sdk.AccAddress `json:"admin" yaml:"admin"`
	FeeRecipient   sdk.AccAddress `json:"fee_recipient" yaml:"fee_recipient"`
	ProtocolFeeBps uint32         `json:"protocol_fee_bps" yaml:"protocol_fee_bps"`
}

func NewMsgInitialize(admin, feeRecipient sdk.AccAddress, feeBps uint32) *MsgInitialize {
	return &MsgInitialize{Admin: admin, FeeRecipient: feeRecipient, ProtocolFeeBps: feeBps}
}

func (msg MsgInitialize) Route() string { return RouterKey }
func (msg MsgInitialize) Type() string  { return TypeMsgInitialize }

func (msg MsgInitialize) ValidateBasic() error {
	if msg.Admin.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "admin cannot be empty")
	}
	if msg.FeeRecipient.Empty() {
		return sdkerrors.Wrap(ErrInvalidRecipient, "fee recipient cannot be empty")
	}
	if msg.ProtocolFeeBps > MaxProtocolFeeBps {
		return sdkerrors.Wrapf(ErrInvalidFee, "%d bps exceeds maximum %d", msg.ProtocolFeeBps, MaxProtocolFeeBps)
	}
	return nil
}

func (msg MsgInitialize) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgInitialize) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Admin} }

func (msg *MsgInitialize) Reset()        { *msg = MsgInitialize{} }
func (msg *MsgInitialize) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgInitialize) ProtoMessage()     {}

// MsgCreateSwap locks funds under a hashlock and timelock. Amount is the
// gross amount; the protocol fee is deducted at creation.
type MsgCreateSwap struct {
	Sender    sdk.AccAddress `json:"sender" yaml:"sender"`
	Recipient sdk.AccAddress `json:"recipient" yaml:"recipient"`
	Amount    sdk.Coin       `json:"amount" yaml:"amount"`
	Hashlock  []byte         `json:"hashlock" yaml:"hashlock"`

	// Timelock is an absolute unix timestamp in seconds
	Timelock uint64 `json:"timelock" yaml:"timelock"`

	// Cross-chain correlation, informational only
	EthContract string `json:"eth_contract,omitempty" yaml:"eth_contract"`
	EthChainId  uint64 `json:"eth_chain_id,omitempty" yaml:"eth_chain_id"`
	EthTxHash   string `json:"eth_tx_hash,omitempty" yaml:"eth_tx_hash"`

	// Resolver is optional; when set it must name an active resolver
	Resolver sdk.AccAddress `json:"resolver,omitempty" yaml:"resolver"`
}

func NewMsgCreateSwap(sender, recipient sdk.AccAddress, amount sdk.Coin, hashlock []byte, timelock uint64) *MsgCreateSwap {
	return &MsgCreateSwap{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Hashlock:  hashlock,
		Timelock:  timelock,
	}
}

func (msg MsgCreateSwap) Route() string { return RouterKey }
func (msg MsgCreateSwap) Type() string  { return TypeMsgCreateSwap }

func (msg MsgCreateSwap) ValidateBasic() error {
	if msg.Sender.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "sender cannot be empty")
	}
	if msg.Recipient.Empty() {
		return sdkerrors.Wrap(ErrInvalidRecipient, "recipient cannot be empty")
	}
	if msg.Recipient.Equals(msg.Sender) {
		return sdkerrors.Wrap(ErrInvalidRecipient, "recipient cannot equal sender")
	}
	if err := msg.Amount.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidAmount, err.Error())
	}
	if !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, msg.Amount.String())
	}
	if len(msg.Hashlock) != HashlockLength {
		return sdkerrors.Wrapf(ErrInvalidPreimage, "hashlock must be %d bytes, got %d", HashlockLength, len(msg.Hashlock))
	}
	if msg.Timelock == 0 {
		return sdkerrors.Wrap(ErrInvalidTimelock, "timelock cannot be zero")
	}
	return nil
}

func (msg MsgCreateSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgCreateSwap) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

func (msg *MsgCreateSwap) Reset()        { *msg = MsgCreateSwap{} }
func (msg *MsgCreateSwap) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgCreateSwap) ProtoMessage()     {}

// MsgClaimSwap unlocks a swap by revealing the preimage of its hashlock.
type MsgClaimSwap struct {
	Claimer  sdk.AccAddress `json:"claimer" yaml:"claimer"`
	SwapId   string         `json:"swap_id" yaml:"swap_id"`
	Preimage []byte         `json:"preimage" yaml:"preimage"`
}

func NewMsgClaimSwap(claimer sdk.AccAddress, swapID string, preimage []byte) *MsgClaimSwap {
	return &MsgClaimSwap{Claimer: claimer, SwapId: swapID, Preimage: preimage}
}

func (msg MsgClaimSwap) Route() string { return RouterKey }
func (msg MsgClaimSwap) Type() string  { return TypeMsgClaimSwap }

func (msg MsgClaimSwap) ValidateBasic() error {
	if msg.Claimer.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "claimer cannot be empty")
	}
	if msg.SwapId == "" {
		return sdkerrors.Wrap(ErrSwapNotFound, "swap id cannot be empty")
	}
	if len(msg.Preimage) != PreimageLength {
		return sdkerrors.Wrapf(ErrInvalidPreimage, "preimage must be %d bytes, got %d", PreimageLength, len(msg.Preimage))
	}
	return nil
}

func (msg MsgClaimSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgClaimSwap) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Claimer} }

func (msg *MsgClaimSwap) Reset()        { *msg = MsgClaimSwap{} }
func (msg *MsgClaimSwap) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgClaimSwap) ProtoMessage()     {}

// MsgRefundSwap returns escrowed funds to the sender after timelock expiry.
type MsgRefundSwap struct {
	Sender sdk.AccAddress `json:"sender" yaml:"sender"`
	SwapId string         `json:"swap_id" yaml:"swap_id"`
}

func NewMsgRefundSwap(sender sdk.AccAddress, swapID string) *MsgRefundSwap {
	return &MsgRefundSwap{Sender: sender, SwapId: swapID}
}

func (msg MsgRefundSwap) Route() string { return RouterKey }
func (msg MsgRefundSwap) Type() string  { return TypeMsgRefundSwap }

func (msg MsgRefundSwap) ValidateBasic() error {
	if msg.Sender.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "sender cannot be empty")
	}
	if msg.SwapId == "" {
		return sdkerrors.Wrap(ErrSwapNotFound, "swap id cannot be empty")
	}
	return nil
}

func (msg MsgRefundSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgRefundSwap) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

func (msg *MsgRefundSwap) Reset()        { *msg = MsgRefundSwap{} }
func (msg *MsgRefundSwap) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgRefundSwap) ProtoMessage()     {}

// MsgMarkSwapFailed is the admin escape hatch for stuck cross-chain
// coordination. It moves no funds.
type MsgMarkSwapFailed struct {
	Admin  sdk.AccAddress `json:"admin" yaml:"admin"`
	SwapId string         `json:"swap_id" yaml:"swap_id"`
	Reason string         `json:"reason" yaml:"reason"`
}

func NewMsgMarkSwapFailed(admin sdk.AccAddress, swapID, reason string) *MsgMarkSwapFailed {
	return &MsgMarkSwapFailed{Admin: admin, SwapId: swapID, Reason: reason}
}

func (msg MsgMarkSwapFailed) Route() string { return RouterKey }
func (msg MsgMarkSwapFailed) Type() string  { return TypeMsgMarkSwapFailed }

func (msg MsgMarkSwapFailed) ValidateBasic() error {
	if msg.Admin.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "admin cannot be empty")
	}
	if msg.SwapId == "" {
		return sdkerrors.Wrap(ErrSwapNotFound, "swap id cannot be empty")
	}
	return nil
}

func (msg MsgMarkSwapFailed) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgMarkSwapFailed) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Admin} }

func (msg *MsgMarkSwapFailed) Reset()        { *msg = MsgMarkSwapFailed{} }
func (msg *MsgMarkSwapFailed) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgMarkSwapFailed) ProtoMessage()     {}

// MsgRegisterResolver registers or re-registers a resolver. Re-registering
// an existing resolver overwrites its record and resets its counters.
type MsgRegisterResolver struct {
	Admin           sdk.AccAddress `json:"admin" yaml:"admin"`
	Resolver        sdk.AccAddress `json:"resolver" yaml:"resolver"`
	CollateralDenom string         `json:"collateral_denom" yaml:"collateral_denom"`
	MinCollateral   sdk.Coin       `json:"min_collateral" yaml:"min_collateral"`
}

func NewMsgRegisterResolver(admin, resolver sdk.AccAddress, minCollateral sdk.Coin) *MsgRegisterResolver {
	return &MsgRegisterResolver{
		Admin:           admin,
		Resolver:        resolver,
		CollateralDenom: minCollateral.Denom,
		MinCollateral:   minCollateral,
	}
}

func (msg MsgRegisterResolver) Route() string { return RouterKey }
func (msg MsgRegisterResolver) Type() string  { return TypeMsgRegisterResolver }

func (msg MsgRegisterResolver) ValidateBasic() error {
	if msg.Admin.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "admin cannot be empty")
	}
	if msg.Resolver.Empty() {
		return sdkerrors.Wrap(ErrResolverNotFound, "resolver cannot be empty")
	}
	if err := msg.MinCollateral.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInsufficientCollateral, err.Error())
	}
	if !msg.MinCollateral.IsPositive() {
		return sdkerrors.Wrap(ErrInsufficientCollateral, msg.MinCollateral.String())
	}
	return nil
}

func (msg MsgRegisterResolver) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgRegisterResolver) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Admin} }

func (msg *MsgRegisterResolver) Reset()        { *msg = MsgRegisterResolver{} }
func (msg *MsgRegisterResolver) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgRegisterResolver) ProtoMessage()     {}

// MsgDeactivateResolver flips a resolver inactive, keeping its history.
type MsgDeactivateResolver struct {
	Admin    sdk.AccAddress `json:"admin" yaml:"admin"`
	Resolver sdk.AccAddress `json:"resolver" yaml:"resolver"`
}

func NewMsgDeactivateResolver(admin, resolver sdk.AccAddress) *MsgDeactivateResolver {
	return &MsgDeactivateResolver{Admin: admin, Resolver: resolver}
}

func (msg MsgDeactivateResolver) Route() string { return RouterKey }
func (msg MsgDeactivateResolver) Type() string  { return TypeMsgDeactivateResolver }

func (msg MsgDeactivateResolver) ValidateBasic() error {
	if msg.Admin.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "admin cannot be empty")
	}
	if msg.Resolver.Empty() {
		return sdkerrors.Wrap(ErrResolverNotFound, "resolver cannot be empty")
	}
	return nil
}

func (msg MsgDeactivateResolver) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgDeactivateResolver) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Admin} }

func (msg *MsgDeactivateResolver) Reset()        { *msg = MsgDeactivateResolver{} }
func (msg *MsgDeactivateResolver) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgDeactivateResolver) ProtoMessage()     {}

// MsgUpdateProtocolFee changes the protocol fee, admin only.
type MsgUpdateProtocolFee struct {
	Admin     sdk.AccAddress `json:"admin" yaml:"admin"`
	NewFeeBps uint32         `json:"new_fee_bps" yaml:"new_fee_bps"`
}

func NewMsgUpdateProtocolFee(admin sdk.AccAddress, newFeeBps uint32) *MsgUpdateProtocolFee {
	return &MsgUpdateProtocolFee{Admin: admin, NewFeeBps: newFeeBps}
}

func (msg MsgUpdateProtocolFee) Route() string { return RouterKey }
func (msg MsgUpdateProtocolFee) Type() string  { return TypeMsgUpdateProtocolFee }

func (msg MsgUpdateProtocolFee) ValidateBasic() error {
	if msg.Admin.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "admin cannot be empty")
	}
	if msg.NewFeeBps > MaxProtocolFeeBps {
		return sdkerrors.Wrapf(ErrInvalidFee, "%d bps exceeds maximum %d", msg.NewFeeBps, MaxProtocolFeeBps)
	}
	return nil
}

func (msg MsgUpdateProtocolFee) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUpdateProtocolFee) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Admin} }

func (msg *MsgUpdateProtocolFee) Reset()        { *msg = MsgUpdateProtocolFee{} }
func (msg *MsgUpdateProtocolFee) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgUpdateProtocolFee) ProtoMessage()     {}

// MsgUpdateFeeRecipient changes the fee recipient, admin only.
type MsgUpdateFeeRecipient struct {
	Admin        sdk.AccAddress `json:"admin" yaml:"admin"`
	NewRecipient sdk.AccAddress `json:"new_recipient" yaml:"new_recipient"`
}

func NewMsgUpdateFeeRecipient(admin, newRecipient sdk.AccAddress) *MsgUpdateFeeRecipient {
	return &MsgUpdateFeeRecipient{Admin: admin, NewRecipient: newRecipient}
}

func (msg MsgUpdateFeeRecipient) Route() string { return RouterKey }
func (msg MsgUpdateFeeRecipient) Type() string  { return TypeMsgUpdateFeeRecipient }

func (msg MsgUpdateFeeRecipient) ValidateBasic() error {
	if msg.Admin.Empty() {
		return sdkerrors.Wrap(ErrUnauthorized, "admin cannot be empty")
	}
	if msg.NewRecipient.Empty() {
		return sdkerrors.Wrap(ErrInvalidRecipient, "new recipient cannot be empty")
	}
	return nil
}

func (msg MsgUpdateFeeRecipient) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUpdateFeeRecipient) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Admin} }

func (msg *MsgUpdateFeeRecipient) Reset()        { *msg = MsgUpdateFeeRecipient{} }
func (msg *MsgUpdateFeeRecipient) String() string { return fmt.Sprintf("%v", *msg) }
func (*MsgUpdateFeeRecipient) ProtoMessage()     {}
