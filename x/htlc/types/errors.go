package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Module errors. Codes are stable and mirror the on-chain contract family
// this module coordinates with, so off-chain relayers can branch on
// codespace+code to decide whether to retry, wait or abandon a swap leg.
var (
	// Input validation
	ErrInvalidAmount    = sdkerrors.Register(ModuleName, 1000, "swap amount must be positive")
	ErrInvalidTimelock  = sdkerrors.Register(ModuleName, 1001, "timelock outside allowed window")
	ErrInvalidFee       = sdkerrors.Register(ModuleName, 1002, "protocol fee exceeds maximum")
	ErrInvalidPreimage  = sdkerrors.Register(ModuleName, 1003, "preimage does not match hashlock")
	ErrInvalidRecipient = sdkerrors.Register(ModuleName, 1004, "invalid recipient")

	// Swap state
	ErrSwapNotFound      = sdkerrors.Register(ModuleName, 2000, "swap not found")
	ErrSwapAlreadyExists = sdkerrors.Register(ModuleName, 2001, "swap id already exists")
	ErrAlreadyClaimed    = sdkerrors.Register(ModuleName, 2002, "swap already claimed")
	ErrAlreadyRefunded   = sdkerrors.Register(ModuleName, 2003, "swap already refunded")

	// Timing
	ErrTimelockExpired    = sdkerrors.Register(ModuleName, 3000, "timelock has expired")
	ErrTimelockNotExpired = sdkerrors.Register(ModuleName, 3001, "timelock has not expired")

	// Authorization
	ErrUnauthorized = sdkerrors.Register(ModuleName, 4000, "unauthorized")
	ErrNotInitiated = sdkerrors.Register(ModuleName, 4001, "caller did not initiate the swap")

	// Collaborator failures
	ErrTokenTransferFailed    = sdkerrors.Register(ModuleName, 5000, "token transfer failed")
	ErrInsufficientBalance    = sdkerrors.Register(ModuleName, 5001, "insufficient balance")
	ErrInsufficientCollateral = sdkerrors.Register(ModuleName, 5002, "insufficient collateral")

	// Resolver registry
	ErrResolverNotFound  = sdkerrors.Register(ModuleName, 6000, "resolver not found")
	ErrResolverNotActive = sdkerrors.Register(ModuleName, 6001, "resolver not active")

	// Module lifecycle
	ErrAlreadyInitialized = sdkerrors.Register(ModuleName, 7000, "module already initialized")
	ErrNotInitialized     = sdkerrors.Register(ModuleName, 7001, "module not initialized")
)
