package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nuban/internal/cli"
	"github.com/Veraticus/nuban/internal/common"
	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/service"
)

func banksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banks",
		Short: "Browse and sync the bank list",
		Long:  `List, search, and look up banks. Sync the cached list from the online directory and check when it was last synced.`,
	}

	cmd.AddCommand(listBanksCmd())
	cmd.AddCommand(searchBanksCmd())
	cmd.AddCommand(findBankCmd())
	cmd.AddCommand(syncBanksCmd())
	cmd.AddCommand(statusBanksCmd())

	return cmd
}

func listBanksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all banks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}
			return cli.PrintBanks(cmd.OutOrStdout(), reg.Banks())
		},
	}
	addSourceFlag(cmd)
	return cmd
}

func searchBanksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find banks whose name contains a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			matches := reg.FindByName(args[0])
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render(fmt.Sprintf("No banks match %q.", args[0])))
				return nil
			}
			return cli.PrintBanks(cmd.OutOrStdout(), matches)
		},
	}
	addSourceFlag(cmd)
	return cmd
}

func findBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <code>",
		Short: "Look up a bank by its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			bank, ok := reg.FindByCode(args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("no bank with code %s", args[0]), common.ErrNotFound)
			}
			return cli.PrintBanks(cmd.OutOrStdout(), []model.Bank{bank})
		},
	}
	addSourceFlag(cmd)
	return cmd
}

func syncBanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Download the bank list from the online directory into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newBankEnv(cmd.Context(), service.SourceOnline)
			if err != nil {
				return err
			}
			defer env.Close()

			count, err := env.service.Sync(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Cached %d banks", count)))
			return nil
		},
	}
}

func statusBanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show when each cached bank list was last synced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newBankEnv(cmd.Context(), service.SourceCache)
			if err != nil {
				return err
			}
			defer env.Close()

			syncs, err := env.service.Syncs(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(syncs) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No cached bank lists. Use 'nuban banks sync' to fetch one."))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Source"),
				cli.TableHeaderStyle.Render("Banks"),
				cli.TableHeaderStyle.Render("Synced"))
			for _, info := range syncs {
				fmt.Fprintf(w, "%s\t%d\t%s (%s ago)\n",
					info.Source,
					info.BankCount,
					info.SyncedAt.Local().Format(time.DateTime),
					time.Since(info.SyncedAt).Round(time.Second))
			}
			return w.Flush()
		},
	}
}
