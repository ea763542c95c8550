package types_test

import (
	"crypto/sha256"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/interchainx/htlc/x/htlc/types"
)

var (
	testSender    = sdk.AccAddress("sender______________")
	testRecipient = sdk.AccAddress("recipient___________")
)

func testPreimageAndHashlock(secret string) (preimage, hashlock []byte) {
	sum := sha256.Sum256([]byte(secret))
	preimage = sum[:]
	lock := sha256.Sum256(preimage)
	return preimage, lock[:]
}

func validSwap() types.Swap {
	_, hashlock := testPreimageAndHashlock("valid")
	return types.Swap{
		Id:        "abc123",
		Sender:    testSender,
		Recipient: testRecipient,
		Token:     "uatom",
		Amount:    math.NewInt(1000),
		Hashlock:  hashlock,
		Timelock:  1700007200,
		Status:    types.StatusPending,
		CreatedAt: 1700000000,
	}
}

func TestSwapStatusString(t *testing.T) {
	require.Equal(t, "pending", types.StatusPending.String())
	require.Equal(t, "claimed", types.StatusClaimed.String())
	require.Equal(t, "refunded", types.StatusRefunded.String())
	require.Equal(t, "failed", types.StatusFailed.String())
	require.Contains(t, types.SwapStatus(42).String(), "unknown")
}

func TestSwapStatusValidate(t *testing.T) {
	require.NoError(t, types.StatusPending.Validate())
	require.NoError(t, types.StatusFailed.Validate())
	require.Error(t, types.SwapStatus(-1).Validate())
	require.Error(t, types.SwapStatus(4).Validate())
}

func TestVerifyPreimage(t *testing.T) {
	preimage, hashlock := testPreimageAndHashlock("secret")

	require.True(t, types.VerifyPreimage(preimage, hashlock))
	require.False(t, types.VerifyPreimage([]byte("wrong"), hashlock))
	require.False(t, types.VerifyPreimage(preimage, []byte("short")))
	require.False(t, types.VerifyPreimage(nil, hashlock))
}

func TestSwapValidate(t *testing.T) {
	require.NoError(t, validSwap().Validate())
}

func TestSwapValidateRejects(t *testing.T) {
	preimage, _ := testPreimageAndHashlock("valid")

	cases := []struct {
		name   string
		mutate func(*types.Swap)
	}{
		{"empty id", func(s *types.Swap) { s.Id = "" }},
		{"empty sender", func(s *types.Swap) { s.Sender = nil }},
		{"empty recipient", func(s *types.Swap) { s.Recipient = nil }},
		{"bad denom", func(s *types.Swap) { s.Token = "" }},
		{"nil amount", func(s *types.Swap) { s.Amount = math.Int{} }},
		{"zero amount", func(s *types.Swap) { s.Amount = math.ZeroInt() }},
		{"short hashlock", func(s *types.Swap) { s.Hashlock = []byte("short") }},
		{"bad status", func(s *types.Swap) { s.Status = types.SwapStatus(9) }},
		{"claimed without preimage", func(s *types.Swap) {
			s.Status = types.StatusClaimed
			s.ClaimedAt = 1700000100
		}},
		{"pending with preimage", func(s *types.Swap) { s.Preimage = preimage }},
		{"claimed with wrong preimage", func(s *types.Swap) {
			s.Status = types.StatusClaimed
			s.ClaimedAt = 1700000100
			wrong, _ := testPreimageAndHashlock("other")
			s.Preimage = wrong
		}},
		{"refunded without timestamp", func(s *types.Swap) { s.Status = types.StatusRefunded }},
		{"pending with refund timestamp", func(s *types.Swap) { s.RefundedAt = 1700000100 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			swap := validSwap()
			tc.mutate(&swap)
			require.Error(t, swap.Validate())
		})
	}
}

func TestSwapValidateClaimed(t *testing.T) {
	preimage, hashlock := testPreimageAndHashlock("claimed")

	swap := validSwap()
	swap.Hashlock = hashlock
	swap.Status = types.StatusClaimed
	swap.ClaimedAt = 1700000100
	swap.Preimage = preimage

	require.NoError(t, swap.Validate())
}

func TestSplitProtocolFee(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		bps    uint32
		net    int64
		fee    int64
	}{
		{"30 bps", 1_000_000, 30, 997_000, 3_000},
		{"zero fee", 1_000_000, 0, 1_000_000, 0},
		{"max fee", 1_000_000, 500, 950_000, 50_000},
		{"rounds down", 999, 30, 997, 2},
		{"tiny amount", 1, 500, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, fee := types.SplitProtocolFee(math.NewInt(tc.amount), tc.bps)
			require.Equal(t, math.NewInt(tc.net), net)
			require.Equal(t, math.NewInt(tc.fee), fee)
			require.Equal(t, math.NewInt(tc.amount), net.Add(fee))
		})
	}
}

func TestResolverInfoValidate(t *testing.T) {
	info := types.ResolverInfo{
		Resolver:        testSender,
		CollateralDenom: "uatom",
		MinCollateral:   math.NewInt(1000),
		IsActive:        true,
	}
	require.NoError(t, info.Validate())

	info.MinCollateral = math.ZeroInt()
	require.Error(t, info.Validate())

	info.MinCollateral = math.NewInt(1000)
	info.Resolver = nil
	require.Error(t, info.Validate())
}
