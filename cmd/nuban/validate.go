package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nuban/internal/cli"
	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/nuban"
	"github.com/Veraticus/nuban/internal/registry"
)

func validateCmd() *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "validate [account-number bank-code]",
		Short: "Check an account number against a bank code",
		Long: `Validate the check digit of a NUBAN for a given bank code.

With --file, every row of a CSV file of account_number,bank_code pairs is
validated and a summary is printed. A header row is optional.`,
		Example: `  nuban validate 1234567899 057
  nuban validate --file accounts.csv --output results.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if len(args) != 0 {
					return fmt.Errorf("--file cannot be combined with positional arguments")
				}
				return runBatchValidate(cmd, file, output)
			}
			if len(args) != 2 {
				return fmt.Errorf("requires an account number and a bank code")
			}
			return runValidate(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file of account_number,bank_code rows")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write per-row results as CSV to this file")

	return cmd
}

func runValidate(w io.Writer, accountNumber, bankCode string) error {
	valid, err := nuban.Validate(accountNumber, bankCode)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, cli.FormatValidation(accountNumber, lookupBank(bankCode), valid))

	if !valid {
		return errInvalidAccount
	}
	return nil
}

// lookupBank finds bankCode in the built-in registry, first as given and
// then by its normalized 6 digit form. Unknown codes get a nameless entry.
func lookupBank(bankCode string) model.Bank {
	if bank, ok := registry.FindByCode(bankCode); ok {
		return bank
	}

	normalized, err := nuban.NormalizeBankCode(bankCode)
	if err != nil {
		return model.Bank{Code: bankCode}
	}
	for _, bank := range registry.Banks() {
		if code, err := nuban.NormalizeBankCode(bank.Code); err == nil && code == normalized {
			return bank
		}
	}
	return model.Bank{Code: bankCode}
}

func runBatchValidate(cmd *cobra.Command, file, output string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Batch validation")
	if output != "" {
		interrupts.WithHint("Rows checked so far are written to " + output)
	}
	ctx, stop := interrupts.HandleInterrupts(cmd.Context())
	defer stop()

	results, summary, err := cli.NewBatchValidator(cmd.ErrOrStderr()).Validate(ctx, f)
	if err != nil && !interrupts.WasInterrupted() && !errors.Is(err, context.Canceled) {
		return err
	}

	if output != "" {
		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer out.Close()
		if err := cli.WriteResults(out, results); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSummary(summary))
	return err
}
