package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/interchainx/htlc/x/htlc/types"
)

func TestCreateSwap(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("create")
	msg := validCreateMsg(hashlock)

	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)
	require.Len(t, id, 64)

	swap, found := env.k.GetSwap(env.ctx, id)
	require.True(t, found)
	require.Equal(t, types.StatusPending, swap.Status)
	require.Equal(t, sender, swap.Sender)
	require.Equal(t, recipient, swap.Recipient)
	require.Equal(t, "uatom", swap.Token)

	// 1% fee deducted up front, net amount escrowed under the swap
	require.Equal(t, math.NewInt(990_000), swap.Amount)
	require.Equal(t, math.NewInt(10_000), env.k.GetTotalFeesCollected(env.ctx))
	require.Equal(t,
		sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))),
		env.bank.paidOut[feeRecipient.String()],
	)

	require.Equal(t, []string{id}, env.k.GetUserSwaps(env.ctx, sender))
	require.Equal(t, uint64(1), env.k.GetTotalSwapsCreated(env.ctx))
	require.Equal(t, uint64(1), env.k.GetSwapCounter(env.ctx))
}

func TestCreateSwapNotInitialized(t *testing.T) {
	env := setupKeeper(t)

	_, hashlock := preimageAndHashlock("uninit")
	_, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestCreateSwapInvalidAmount(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("zero")
	msg := validCreateMsg(hashlock)
	msg.Amount = sdk.Coin{Denom: "uatom", Amount: math.ZeroInt()}

	_, err := env.k.CreateSwap(env.ctx, msg)
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestCreateSwapTimelockBounds(t *testing.T) {
	env := setupInitialized(t)
	_, hashlock := preimageAndHashlock("bounds")

	cases := []struct {
		name     string
		timelock uint64
		ok       bool
	}{
		{"at minimum", baseTime + types.MinTimelockDuration, false},
		{"just above minimum", baseTime + types.MinTimelockDuration + 1, true},
		{"at maximum", baseTime + types.MaxTimelockDuration, true},
		{"above maximum", baseTime + types.MaxTimelockDuration + 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := validCreateMsg(hashlock)
			msg.Timelock = tc.timelock

			_, err := env.k.CreateSwap(env.ctx, msg)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, types.ErrInvalidTimelock)
			}
		})
	}
}

func TestCreateSwapUnknownResolver(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("resolver")
	msg := validCreateMsg(hashlock)
	msg.Resolver = resolverAddr

	_, err := env.k.CreateSwap(env.ctx, msg)
	require.ErrorIs(t, err, types.ErrResolverNotActive)
}

func TestCreateSwapDeactivatedResolver(t *testing.T) {
	env := setupInitialized(t)

	collateral := sdk.NewCoin("uatom", math.NewInt(1_000))
	require.NoError(t, env.k.RegisterResolver(env.ctx, admin, resolverAddr, collateral))
	require.NoError(t, env.k.DeactivateResolver(env.ctx, admin, resolverAddr))

	_, hashlock := preimageAndHashlock("deactivated")
	msg := validCreateMsg(hashlock)
	msg.Resolver = resolverAddr

	_, err := env.k.CreateSwap(env.ctx, msg)
	require.ErrorIs(t, err, types.ErrResolverNotActive)
}

func TestCreateSwapWithResolver(t *testing.T) {
	env := setupInitialized(t)

	collateral := sdk.NewCoin("uatom", math.NewInt(1_000))
	require.NoError(t, env.k.RegisterResolver(env.ctx, admin, resolverAddr, collateral))

	_, hashlock := preimageAndHashlock("with-resolver")
	msg := validCreateMsg(hashlock)
	msg.Resolver = resolverAddr

	_, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	info, found := env.k.GetResolver(env.ctx, resolverAddr)
	require.True(t, found)
	require.Equal(t, uint64(1), info.TotalSwaps)
	require.Equal(t, uint64(0), info.TotalResolved)
}

func TestCreateSwapIdenticalParamsDistinctIds(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("twins")

	first, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)
	second, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	// same block, same sender, same parameters: the counter keeps the ids
	// apart
	require.NotEqual(t, first, second)
	require.Equal(t, []string{first, second}, env.k.GetUserSwaps(env.ctx, sender))
}

func TestCreateSwapEscrowFailure(t *testing.T) {
	env := setupInitialized(t)
	env.bank.failEscrow = true

	_, hashlock := preimageAndHashlock("no-funds")
	_, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.ErrorIs(t, err, types.ErrTokenTransferFailed)
	require.Equal(t, uint64(0), env.k.GetTotalSwapsCreated(env.ctx))
}

func TestCreateSwapZeroFee(t *testing.T) {
	env := setupKeeper(t)
	require.NoError(t, env.k.Initialize(env.ctx, admin, feeRecipient, 0))

	_, hashlock := preimageAndHashlock("no-fee")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	swap, _ := env.k.GetSwap(env.ctx, id)
	require.Equal(t, math.NewInt(1_000_000), swap.Amount)
	require.True(t, env.k.GetTotalFeesCollected(env.ctx).IsZero())
	require.Empty(t, env.bank.paidOut[feeRecipient.String()])
}

func TestClaimSwap(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("claim")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	require.NoError(t, env.k.ClaimSwap(env.ctx, id, preimage, recipient))

	swap, _ := env.k.GetSwap(env.ctx, id)
	require.Equal(t, types.StatusClaimed, swap.Status)
	require.Equal(t, preimage, swap.Preimage)
	require.Equal(t, int64(baseTime), swap.ClaimedAt)

	require.Equal(t,
		sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(990_000))),
		env.bank.paidOut[recipient.String()],
	)
	require.Equal(t, uint64(1), env.k.GetTotalSwapsCompleted(env.ctx))
}

func TestClaimSwapNotFound(t *testing.T) {
	env := setupInitialized(t)

	preimage, _ := preimageAndHashlock("missing")
	err := env.k.ClaimSwap(env.ctx, "deadbeef", preimage, recipient)
	require.ErrorIs(t, err, types.ErrSwapNotFound)
}

func TestClaimSwapWrongPreimage(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("right")
	wrong, _ := preimageAndHashlock("wrong")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	// the preimage check fires before the claimant check, so a stranger
	// with a bad preimage sees the same error as the recipient would
	err = env.k.ClaimSwap(env.ctx, id, wrong, stranger)
	require.ErrorIs(t, err, types.ErrInvalidPreimage)

	err = env.k.ClaimSwap(env.ctx, id, wrong, recipient)
	require.ErrorIs(t, err, types.ErrInvalidPreimage)
}

func TestClaimSwapUnauthorized(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("not-yours")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	err = env.k.ClaimSwap(env.ctx, id, preimage, stranger)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestClaimSwapExpired(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("late")
	msg := validCreateMsg(hashlock)
	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	// claim window closes exactly at the timelock
	ctx := env.ctx.WithBlockTime(time.Unix(int64(msg.Timelock), 0))
	err = env.k.ClaimSwap(ctx, id, preimage, recipient)
	require.ErrorIs(t, err, types.ErrTimelockExpired)

	// one second earlier it is still open
	ctx = env.ctx.WithBlockTime(time.Unix(int64(msg.Timelock)-1, 0))
	require.NoError(t, env.k.ClaimSwap(ctx, id, preimage, recipient))
}

func TestClaimSwapTwice(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("double")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	require.NoError(t, env.k.ClaimSwap(env.ctx, id, preimage, recipient))
	err = env.k.ClaimSwap(env.ctx, id, preimage, recipient)
	require.ErrorIs(t, err, types.ErrAlreadyClaimed)
}

func TestClaimSwapAfterRefund(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("gone")
	msg := validCreateMsg(hashlock)
	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	ctx := env.ctx.WithBlockTime(time.Unix(int64(msg.Timelock), 0))
	require.NoError(t, env.k.RefundSwap(ctx, id, sender))

	err = env.k.ClaimSwap(env.ctx, id, preimage, recipient)
	require.ErrorIs(t, err, types.ErrAlreadyRefunded)
}

func TestClaimSwapPayoutFailureKeepsPending(t *testing.T) {
	env := setupKeeper(t)
	require.NoError(t, env.k.Initialize(env.ctx, admin, feeRecipient, 0))

	preimage, hashlock := preimageAndHashlock("stuck")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	env.bank.failPayout = true
	err = env.k.ClaimSwap(env.ctx, id, preimage, recipient)
	require.ErrorIs(t, err, types.ErrTokenTransferFailed)

	swap, _ := env.k.GetSwap(env.ctx, id)
	require.Equal(t, types.StatusPending, swap.Status)
	require.Equal(t, uint64(0), env.k.GetTotalSwapsCompleted(env.ctx))
}

func TestClaimSwapResolverResolved(t *testing.T) {
	env := setupInitialized(t)

	collateral := sdk.NewCoin("uatom", math.NewInt(1_000))
	require.NoError(t, env.k.RegisterResolver(env.ctx, admin, resolverAddr, collateral))

	preimage, hashlock := preimageAndHashlock("resolved")
	msg := validCreateMsg(hashlock)
	msg.Resolver = resolverAddr
	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	require.NoError(t, env.k.ClaimSwap(env.ctx, id, preimage, recipient))

	info, _ := env.k.GetResolver(env.ctx, resolverAddr)
	require.Equal(t, uint64(1), info.TotalResolved)
}

func TestRefundSwap(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("refund")
	msg := validCreateMsg(hashlock)
	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	// refundable from the timelock instant onwards
	ctx := env.ctx.WithBlockTime(time.Unix(int64(msg.Timelock), 0))
	require.NoError(t, env.k.RefundSwap(ctx, id, sender))

	swap, _ := env.k.GetSwap(env.ctx, id)
	require.Equal(t, types.StatusRefunded, swap.Status)
	require.Equal(t, int64(msg.Timelock), swap.RefundedAt)
	require.Equal(t,
		sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(990_000))),
		env.bank.paidOut[sender.String()],
	)
}

func TestRefundSwapBeforeExpiry(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("early")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	err = env.k.RefundSwap(env.ctx, id, sender)
	require.ErrorIs(t, err, types.ErrTimelockNotExpired)
}

func TestRefundSwapUnauthorized(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("not-sender")
	msg := validCreateMsg(hashlock)
	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	ctx := env.ctx.WithBlockTime(time.Unix(int64(msg.Timelock), 0))
	err = env.k.RefundSwap(ctx, id, stranger)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestRefundSwapTwice(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("again")
	msg := validCreateMsg(hashlock)
	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	ctx := env.ctx.WithBlockTime(time.Unix(int64(msg.Timelock), 0))
	require.NoError(t, env.k.RefundSwap(ctx, id, sender))
	err = env.k.RefundSwap(ctx, id, sender)
	require.ErrorIs(t, err, types.ErrAlreadyRefunded)
}

func TestRefundSwapAfterClaim(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("claimed-first")
	msg := validCreateMsg(hashlock)
	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	require.NoError(t, env.k.ClaimSwap(env.ctx, id, preimage, recipient))

	ctx := env.ctx.WithBlockTime(time.Unix(int64(msg.Timelock), 0))
	err = env.k.RefundSwap(ctx, id, sender)
	require.ErrorIs(t, err, types.ErrAlreadyClaimed)
}

func TestMarkSwapFailed(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("failed")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	require.NoError(t, env.k.MarkSwapFailed(env.ctx, id, admin, "counterparty vanished"))

	swap, _ := env.k.GetSwap(env.ctx, id)
	require.Equal(t, types.StatusFailed, swap.Status)
}

func TestMarkSwapFailedUnauthorized(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("nope")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	err = env.k.MarkSwapFailed(env.ctx, id, stranger, "")
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestMarkSwapFailedAfterClaim(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("too-late")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)
	require.NoError(t, env.k.ClaimSwap(env.ctx, id, preimage, recipient))

	err = env.k.MarkSwapFailed(env.ctx, id, admin, "")
	require.ErrorIs(t, err, types.ErrAlreadyClaimed)
}

func TestFailedSwapStaysRefundable(t *testing.T) {
	env := setupInitialized(t)

	_, hashlock := preimageAndHashlock("rescue")
	msg := validCreateMsg(hashlock)
	id, err := env.k.CreateSwap(env.ctx, msg)
	require.NoError(t, err)

	require.NoError(t, env.k.MarkSwapFailed(env.ctx, id, admin, "stuck"))

	ctx := env.ctx.WithBlockTime(time.Unix(int64(msg.Timelock), 0))
	require.NoError(t, env.k.RefundSwap(ctx, id, sender))

	swap, _ := env.k.GetSwap(env.ctx, id)
	require.Equal(t, types.StatusRefunded, swap.Status)
}

func TestFailedSwapStaysClaimable(t *testing.T) {
	env := setupInitialized(t)

	preimage, hashlock := preimageAndHashlock("revive")
	id, err := env.k.CreateSwap(env.ctx, validCreateMsg(hashlock))
	require.NoError(t, err)

	require.NoError(t, env.k.MarkSwapFailed(env.ctx, id, admin, "stuck"))
	require.NoError(t, env.k.ClaimSwap(env.ctx, id, preimage, recipient))
}

func TestFeesAccumulate(t *testing.T) {
	env := setupInitialized(t)

	_, h1 := preimageAndHashlock("fee-1")
	_, h2 := preimageAndHashlock("fee-2")
	_, err := env.k.CreateSwap(env.ctx, validCreateMsg(h1))
	require.NoError(t, err)
	_, err = env.k.CreateSwap(env.ctx, validCreateMsg(h2))
	require.NoError(t, err)

	require.Equal(t, math.NewInt(20_000), env.k.GetTotalFeesCollected(env.ctx))
}
