package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/nuban/internal/tui"
)

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Type an account number and see matching banks as you go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}
			return tui.RunLookup(cmd.Context(), reg)
		},
	}
	addSourceFlag(cmd)
	return cmd
}
