package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the asset-transfer collaborator. Escrowed funds live in the
// module account; every successful claim or refund moves them out exactly
// once, atomically with the status transition.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}
