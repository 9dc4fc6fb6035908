package main

import (
	"fmt"

	"github.com/chitieu-app/chitieu/internal/cli"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Read an amount as Vietnamese words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			client, err := newAIClient(cmd)
			if err != nil {
				return err
			}

			words := client.AmountInWords(cmd.Context(), amount)
			if words == "" {
				fmt.Println(cli.WarningStyle.Render("No reading available."))
				return nil
			}

			fmt.Println(words)
			return nil
		},
	}
}
