package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nuban/internal/cli"
	"github.com/Veraticus/nuban/internal/nuban"
)

func checkDigitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check-digit <bank-code> <serial>",
		Short:   "Compute the check digit for a bank code and 9 digit serial",
		Example: `  nuban check-digit 057 123456789`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := nuban.GenerateAccountNumber(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Check digit: %c\n", account[nuban.SerialLength])
			fmt.Fprintln(out, cli.FormatInfo("Account number: "+account))
			return nil
		},
	}
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <bank-code>",
		Short: "Print the 6 digit form of a bank code",
		Long: `Normalize a CBN (3 digit), NIP (5 digit) or 6 digit bank code to the 6 digit
form used in the check digit calculation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := nuban.NormalizeBankCode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
}
