package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nuban/internal/cli"
	"github.com/Veraticus/nuban/internal/nuban"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict <account-number>",
		Short: "List banks whose check digit matches an account number",
		Long: `Predict which banks could have issued a NUBAN by checking the account
number against every bank in the selected bank list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			banks, err := nuban.PredictBanks(args[0], reg.Banks())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(banks) == 0 {
				fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("No bank matches %s", args[0])))
				return nil
			}
			fmt.Fprintln(out, cli.FormatTitle("Possible banks for "+args[0]))
			return cli.PrintBanks(out, banks)
		},
	}

	addSourceFlag(cmd)
	return cmd
}
