package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the mutable contract configuration. It is written once by
// Initialize and mutated only through the admin-gated setters.
type Params struct {
	// Admin may register/deactivate resolvers, mark swaps failed and
	// change the fee configuration
	Admin sdk.AccAddress `json:"admin" yaml:"admin"`

	// FeeRecipient receives the protocol fee cut of every swap
	FeeRecipient sdk.AccAddress `json:"fee_recipient" yaml:"fee_recipient"`

	// ProtocolFeeBps is the fee in basis points, at most 500 (5%)
	ProtocolFeeBps uint32 `json:"protocol_fee_bps" yaml:"protocol_fee_bps"`
}

// NewParams constructs a Params value.
func NewParams(admin, feeRecipient sdk.AccAddress, feeBps uint32) Params {
	return Params{
		Admin:          admin,
		FeeRecipient:   feeRecipient,
		ProtocolFeeBps: feeBps,
	}
}

// Validate checks the configuration bounds.
func (p Params) Validate() error {
	if p.Admin.Empty() {
		return fmt.Errorf("admin cannot be empty")
	}
	if p.FeeRecipient.Empty() {
		return fmt.Errorf("fee recipient cannot be empty")
	}
	if p.ProtocolFeeBps > MaxProtocolFeeBps {
		return fmt.Errorf("protocol fee %d bps exceeds maximum %d", p.ProtocolFeeBps, MaxProtocolFeeBps)
	}
	return nil
}

// SplitProtocolFee splits a gross amount into the escrowed net amount and
// the protocol fee, fee = floor(amount * bps / 10000). math.Int covers the
// full value domain of the underlying assets, so the multiplication cannot
// overflow.
func SplitProtocolFee(amount math.Int, feeBps uint32) (net, fee math.Int) {
	fee = amount.MulRaw(int64(feeBps)).QuoRaw(BpsDenominator)
	return amount.Sub(fee), fee
}
