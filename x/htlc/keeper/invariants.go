package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

// RegisterInvariants registers the module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "swap-records", SwapRecordsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "swap-counters", SwapCountersInvariant(k))
}

// SwapRecordsInvariant checks the structural invariants of every stored
// swap: positive amount, preimage present exactly when claimed and hashing
// to the hashlock, and transition timestamps matching the status.
func SwapRecordsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken int
			msg    string
		)

		k.IterateSwaps(ctx, func(swap types.Swap) bool {
			if err := swap.Validate(); err != nil {
				broken++
				msg += fmt.Sprintf("\t%v\n", err)
			}
			return false
		})

		return sdk.FormatInvariant(
			types.ModuleName, "swap-records",
			fmt.Sprintf("%d invalid swap record(s)\n%s", broken, msg),
		), broken != 0
	}
}

// SwapCountersInvariant checks that the aggregate counters are consistent
// with the stored swap set.
func SwapCountersInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var stored, claimed uint64
		k.IterateSwaps(ctx, func(swap types.Swap) bool {
			stored++
			if swap.Status == types.StatusClaimed {
				claimed++
			}
			return false
		})

		created := k.GetTotalSwapsCreated(ctx)
		completed := k.GetTotalSwapsCompleted(ctx)

		broken := stored > created || claimed != completed || completed > created
		return sdk.FormatInvariant(
			types.ModuleName, "swap-counters",
			fmt.Sprintf(
				"stored=%d created=%d claimed=%d completed=%d",
				stored, created, claimed, completed,
			),
		), broken
	}
}
