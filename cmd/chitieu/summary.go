package main

import (
	"os"

	"github.com/chitieu-app/chitieu/internal/cli"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show total income, total expense, and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			sum, err := store.Totals(cmd.Context(), user)
			if err != nil {
				return err
			}

			cli.RenderSummary(os.Stdout, user, sum)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "owner username")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
