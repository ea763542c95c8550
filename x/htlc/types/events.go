package types

// Event types emitted on every state transition. Delivery is best effort
// and never part of the transactional guarantee; off-chain coordinators
// consume these to drive the counterparty chain.
const (
	EventTypeContractInitialized = "contract_initialized"
	EventTypeSwapInitialized     = "swap_initialized"
	EventTypeFundsClaimed        = "funds_claimed"
	EventTypeFundsRefunded       = "funds_refunded"
	EventTypeSwapStatusUpdated   = "swap_status_updated"
	EventTypeSwapFailed          = "swap_failed"
	EventTypeResolverRegistered  = "resolver_registered"
	EventTypeResolverDeactivated = "resolver_deactivated"
	EventTypeProtocolFeeUpdated  = "protocol_fee_updated"
	EventTypeFeeRecipientUpdated = "fee_recipient_updated"
)

// Event attribute keys.
const (
	AttributeKeySwapID        = "swap_id"
	AttributeKeySender        = "sender"
	AttributeKeyRecipient     = "recipient"
	AttributeKeyToken         = "token"
	AttributeKeyAmount        = "amount"
	AttributeKeyFee           = "fee"
	AttributeKeyHashlock      = "hashlock"
	AttributeKeyTimelock      = "timelock"
	AttributeKeyPreimage      = "preimage"
	AttributeKeyResolver      = "resolver"
	AttributeKeyCollateral    = "collateral"
	AttributeKeyOldStatus     = "old_status"
	AttributeKeyNewStatus     = "new_status"
	AttributeKeyAdmin         = "admin"
	AttributeKeyFeeRecipient  = "fee_recipient"
	AttributeKeyFeeBps        = "fee_bps"
	AttributeKeyOldFeeBps     = "old_fee_bps"
	AttributeKeyNewFeeBps     = "new_fee_bps"
	AttributeKeyOldRecipient  = "old_recipient"
	AttributeKeyNewRecipient  = "new_recipient"
	AttributeKeyReason        = "reason"
	AttributeKeyEthTxHash     = "eth_tx_hash"
)
