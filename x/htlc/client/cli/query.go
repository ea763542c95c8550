package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/interchainx/htlc/x/htlc/types"
)

func GetQueryCmd(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s query commands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(CmdShowSwap(queryRoute))
	cmd.AddCommand(CmdSwapExists(queryRoute))
	cmd.AddCommand(CmdUserSwaps(queryRoute))
	cmd.AddCommand(CmdStats(queryRoute))
	cmd.AddCommand(CmdShowResolver(queryRoute))

	return cmd
}

func CmdShowSwap(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [id]",
		Short: "Show a swap by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, types.QuerySwap, args[0]), nil)
			if err != nil {
				return err
			}

			var res types.QuerySwapResponse
			types.ModuleCdc.MustUnmarshalJSON(bz, &res)
			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func CmdSwapExists(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exists [id]",
		Short: "Check whether a swap id exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, types.QuerySwapExists, args[0]), nil)
			if err != nil {
				return err
			}

			var res types.QuerySwapExistsResponse
			types.ModuleCdc.MustUnmarshalJSON(bz, &res)
			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func CmdUserSwaps(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user-swaps [address]",
		Short: "List swap ids created by an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, types.QueryUserSwaps, args[0]), nil)
			if err != nil {
				return err
			}

			var res types.QueryUserSwapsResponse
			types.ModuleCdc.MustUnmarshalJSON(bz, &res)
			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func CmdStats(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate swap statistics and module configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", queryRoute, types.QueryStats), nil)
			if err != nil {
				return err
			}

			var res types.QueryStatsResponse
			types.ModuleCdc.MustUnmarshalJSON(bz, &res)
			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func CmdShowResolver(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolver [address]",
		Short: "Show a registered resolver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, types.QueryResolver, args[0]), nil)
			if err != nil {
				return err
			}

			var res types.QueryResolverResponse
			types.ModuleCdc.MustUnmarshalJSON(bz, &res)
			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}
