// Package types defines the types, messages and errors of the HTLC module.
package types

import (
	"crypto/sha256"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// MinTimelockDuration is the minimum distance between creation time and
	// timelock (1 hour in seconds).
	MinTimelockDuration = 3600

	// MaxTimelockDuration is the maximum distance between creation time and
	// timelock (7 days in seconds).
	MaxTimelockDuration = 604800

	// MaxProtocolFeeBps caps the protocol fee at 5%.
	MaxProtocolFeeBps = 500

	// BpsDenominator converts basis points to a fraction.
	BpsDenominator = 10000

	// HashlockLength is the byte length of a SHA-256 hashlock.
	HashlockLength = sha256.Size

	// PreimageLength is the byte length of a claim preimage.
	PreimageLength = sha256.Size
)

// SwapStatus is the lifecycle state of a swap.
type SwapStatus int32

const (
	// StatusPending marks a live swap awaiting claim or refund.
	StatusPending SwapStatus = iota
	// StatusClaimed marks a swap whose funds were paid to the recipient.
	StatusClaimed
	// StatusRefunded marks a swap whose funds were returned to the sender.
	StatusRefunded
	// StatusFailed marks a swap abandoned by the admin for off-chain
	// reconciliation. Funds stay escrowed and remain claimable or
	// refundable in their respective time windows.
	StatusFailed
)

func (s SwapStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusClaimed:
		return "claimed"
	case StatusRefunded:
		return "refunded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Validate returns an error for out-of-range status values.
func (s SwapStatus) Validate() error {
	if s < StatusPending || s > StatusFailed {
		return fmt.Errorf("invalid swap status %d", int32(s))
	}
	return nil
}

// Swap is a hash time-locked escrow instance. All fields except Status,
// ClaimedAt, RefundedAt and Preimage are immutable after creation.
type Swap struct {
	// Id is the hex-encoded digest uniquely identifying the swap
	Id string `json:"id" yaml:"id"`

	// Sender locked the funds and owns refund rights
	Sender sdk.AccAddress `json:"sender" yaml:"sender"`

	// Recipient owns claim rights
	Recipient sdk.AccAddress `json:"recipient" yaml:"recipient"`

	// Token is the denom of the escrowed asset
	Token string `json:"token" yaml:"token"`

	// Amount escrowed, net of the protocol fee
	Amount math.Int `json:"amount" yaml:"amount"`

	// Hashlock is the SHA-256 digest of the claim secret
	Hashlock []byte `json:"hashlock" yaml:"hashlock"`

	// Timelock is the unix timestamp after which refund is possible
	Timelock uint64 `json:"timelock" yaml:"timelock"`

	Status SwapStatus `json:"status" yaml:"status"`

	// CreatedAt is the block time at creation
	CreatedAt int64 `json:"created_at" yaml:"created_at"`

	// ClaimedAt and RefundedAt are zero until the corresponding transition
	ClaimedAt  int64 `json:"claimed_at,omitempty" yaml:"claimed_at"`
	RefundedAt int64 `json:"refunded_at,omitempty" yaml:"refunded_at"`

	// Preimage is nil until the swap is claimed
	Preimage []byte `json:"preimage,omitempty" yaml:"preimage"`

	// Cross-chain correlation fields, informational only
	EthContract string `json:"eth_contract,omitempty" yaml:"eth_contract"`
	EthChainId  uint64 `json:"eth_chain_id,omitempty" yaml:"eth_chain_id"`
	EthTxHash   string `json:"eth_tx_hash,omitempty" yaml:"eth_tx_hash"`

	// Resolver is the optional facilitator, empty when none was named
	Resolver sdk.AccAddress `json:"resolver,omitempty" yaml:"resolver"`
}

// Validate checks the structural invariants of a stored swap record.
func (s Swap) Validate() error {
	if s.Id == "" {
		return fmt.Errorf("swap id cannot be empty")
	}
	if s.Sender.Empty() {
		return fmt.Errorf("swap %s: sender cannot be empty", s.Id)
	}
	if s.Recipient.Empty() {
		return fmt.Errorf("swap %s: recipient cannot be empty", s.Id)
	}
	if err := sdk.ValidateDenom(s.Token); err != nil {
		return fmt.Errorf("swap %s: %w", s.Id, err)
	}
	if s.Amount.IsNil() || !s.Amount.IsPositive() {
		return fmt.Errorf("swap %s: amount must be positive", s.Id)
	}
	if len(s.Hashlock) != HashlockLength {
		return fmt.Errorf("swap %s: hashlock must be %d bytes", s.Id, HashlockLength)
	}
	if err := s.Status.Validate(); err != nil {
		return fmt.Errorf("swap %s: %w", s.Id, err)
	}
	if (s.Status == StatusClaimed) != (s.Preimage != nil) {
		return fmt.Errorf("swap %s: preimage must be set exactly when claimed", s.Id)
	}
	if (s.Status == StatusClaimed) != (s.ClaimedAt != 0) {
		return fmt.Errorf("swap %s: claimed_at must be set exactly when claimed", s.Id)
	}
	if (s.Status == StatusRefunded) != (s.RefundedAt != 0) {
		return fmt.Errorf("swap %s: refunded_at must be set exactly when refunded", s.Id)
	}
	if s.Status == StatusClaimed && !VerifyPreimage(s.Preimage, s.Hashlock) {
		return fmt.Errorf("swap %s: stored preimage does not hash to hashlock", s.Id)
	}
	return nil
}

// VerifyPreimage reports whether sha256(preimage) equals hashlock.
func VerifyPreimage(preimage, hashlock []byte) bool {
	if len(hashlock) != HashlockLength {
		return false
	}
	sum := sha256.Sum256(preimage)
	for i := range sum {
		if sum[i] != hashlock[i] {
			return false
		}
	}
	return true
}

// ResolverInfo tracks an authorized third-party facilitator.
type ResolverInfo struct {
	Resolver        sdk.AccAddress `json:"resolver" yaml:"resolver"`
	CollateralDenom string         `json:"collateral_denom" yaml:"collateral_denom"`
	MinCollateral   math.Int       `json:"min_collateral" yaml:"min_collateral"`
	IsActive        bool           `json:"is_active" yaml:"is_active"`

	// TotalSwaps counts swaps created naming this resolver
	TotalSwaps uint64 `json:"total_swaps" yaml:"total_swaps"`

	// TotalResolved counts swaps claimed with this resolver named
	TotalResolved uint64 `json:"total_resolved" yaml:"total_resolved"`

	CreatedAt int64 `json:"created_at" yaml:"created_at"`
}

// Validate checks a stored resolver record.
func (r ResolverInfo) Validate() error {
	if r.Resolver.Empty() {
		return fmt.Errorf("resolver address cannot be empty")
	}
	if err := sdk.ValidateDenom(r.CollateralDenom); err != nil {
		return err
	}
	if r.MinCollateral.IsNil() || !r.MinCollateral.IsPositive() {
		return fmt.Errorf("resolver %s: min collateral must be positive", r.Resolver)
	}
	return nil
}

// ContractStats is a derived aggregate over the swap and resolver sets.
type ContractStats struct {
	TotalSwapsCreated   uint64         `json:"total_swaps_created" yaml:"total_swaps_created"`
	TotalSwapsCompleted uint64         `json:"total_swaps_completed" yaml:"total_swaps_completed"`
	TotalFeesCollected  math.Int       `json:"total_fees_collected" yaml:"total_fees_collected"`
	ProtocolFeeBps      uint32         `json:"protocol_fee_bps" yaml:"protocol_fee_bps"`
	Admin               sdk.AccAddress `json:"admin" yaml:"admin"`
	FeeRecipient        sdk.AccAddress `json:"fee_recipient" yaml:"fee_recipient"`
}
