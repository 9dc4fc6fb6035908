package main

import (
	"fmt"
	"time"

	"github.com/chitieu-app/chitieu/internal/cli"
	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		user     string
		label    string
		amount   string
		category string
		date     string
	)

	cmd := &cobra.Command{
		Use:       "add <expenses|income>",
		Short:     "Record a transaction",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.TableExpenses), string(model.TableIncome)},
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := model.ParseTable(args[0])
			if err != nil {
				return err
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			when := time.Now()
			if date != "" {
				when, err = time.Parse(model.DateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
				}
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			if err := requireUser(cmd, store, user); err != nil {
				return err
			}

			if table == model.TableIncome {
				err = store.AddIncome(cmd.Context(), user, label, amt, category, when)
			} else {
				err = store.AddExpense(cmd.Context(), user, label, amt, category, when)
			}
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Saved: %s %s (%s)", label, cli.FormatVND(amt), category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "owner username")
	cmd.Flags().StringVar(&label, "label", "", "item name or income source")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in VND")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
