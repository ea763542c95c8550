package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

const (
	flagResolver    = "resolver"
	flagEthContract = "eth-contract"
	flagEthChainID  = "eth-chain-id"
	flagEthTxHash   = "eth-tx-hash"
	flagReason      = "reason"
)

func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(CmdInitialize())
	cmd.AddCommand(CmdCreateSwap())
	cmd.AddCommand(CmdClaimSwap())
	cmd.AddCommand(CmdRefundSwap())
	cmd.AddCommand(CmdMarkSwapFailed())
	cmd.AddCommand(CmdRegisterResolver())
	cmd.AddCommand(CmdDeactivateResolver())
	cmd.AddCommand(CmdUpdateProtocolFee())
	cmd.AddCommand(CmdUpdateFeeRecipient())

	return cmd
}

func CmdInitialize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize [fee-recipient] [fee-bps]",
		Short: "Initialize the module with the signer as admin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeRecipient, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			feeBps, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return err
			}

			msg := types.NewMsgInitialize(clientCtx.GetFromAddress(), feeRecipient, uint32(feeBps))
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdCreateSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-swap [recipient] [amount] [hashlock-hex] [timelock]",
		Short: "Lock funds under a hashlock until an absolute unix timelock",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			recipient, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			amount, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return err
			}
			hashlock, err := hex.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("invalid hashlock hex: %w", err)
			}
			timelock, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreateSwap(clientCtx.GetFromAddress(), recipient, amount, hashlock, timelock)

			if resolver, _ := cmd.Flags().GetString(flagResolver); resolver != "" {
				msg.Resolver, err = sdk.AccAddressFromBech32(resolver)
				if err != nil {
					return err
				}
			}
			msg.EthContract, _ = cmd.Flags().GetString(flagEthContract)
			msg.EthChainId, _ = cmd.Flags().GetUint64(flagEthChainID)
			msg.EthTxHash, _ = cmd.Flags().GetString(flagEthTxHash)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagResolver, "", "optional registered resolver facilitating the swap")
	cmd.Flags().String(flagEthContract, "", "counterparty contract address on the other chain")
	cmd.Flags().Uint64(flagEthChainID, 0, "counterparty chain id")
	cmd.Flags().String(flagEthTxHash, "", "counterparty lock transaction hash")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdClaimSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-swap [swap-id] [preimage-hex]",
		Short: "Claim a swap by revealing the hashlock preimage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			preimage, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("invalid preimage hex: %w", err)
			}

			msg := types.NewMsgClaimSwap(clientCtx.GetFromAddress(), args[0], preimage)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdRefundSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund-swap [swap-id]",
		Short: "Refund an expired swap back to its sender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRefundSwap(clientCtx.GetFromAddress(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdMarkSwapFailed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark-failed [swap-id]",
		Short: "Mark a pending swap as failed (admin only, moves no funds)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			reason, _ := cmd.Flags().GetString(flagReason)

			msg := types.NewMsgMarkSwapFailed(clientCtx.GetFromAddress(), args[0], reason)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagReason, "", "why the swap is being failed")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdRegisterResolver() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-resolver [resolver] [min-collateral]",
		Short: "Register a resolver (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			resolver, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			minCollateral, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return err
			}

			msg := types.NewMsgRegisterResolver(clientCtx.GetFromAddress(), resolver, minCollateral)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdDeactivateResolver() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deactivate-resolver [resolver]",
		Short: "Deactivate a resolver (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			resolver, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgDeactivateResolver(clientCtx.GetFromAddress(), resolver)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdUpdateProtocolFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-protocol-fee [fee-bps]",
		Short: "Update the protocol fee in basis points (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeBps, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}

			msg := types.NewMsgUpdateProtocolFee(clientCtx.GetFromAddress(), uint32(feeBps))
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdUpdateFeeRecipient() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-fee-recipient [recipient]",
		Short: "Update the protocol fee recipient (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			recipient, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgUpdateFeeRecipient(clientCtx.GetFromAddress(), recipient)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}
