package main

import (
	"os"

	"github.com/chitieu-app/chitieu/internal/cli"
	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		user    string
		withIDs bool
	)

	cmd := &cobra.Command{
		Use:       "list <expenses|income>",
		Short:     "Show transaction history",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.TableExpenses), string(model.TableIncome)},
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := model.ParseTable(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			title := "Expense history"
			if table == model.TableIncome {
				title = "Income history"
			}

			// The id view backs the delete workflow and must reflect the
			// immediate post-write state, so it skips the read cache.
			if withIDs {
				txns, listErr := store.ListWithIDs(cmd.Context(), table, user)
				if listErr != nil {
					return listErr
				}
				cli.RenderTransactions(os.Stdout, title, txns)
				return nil
			}

			var rows []model.Row
			if table == model.TableIncome {
				rows, err = store.ViewIncome(cmd.Context(), user)
			} else {
				rows, err = store.ViewExpenses(cmd.Context(), user)
			}
			if err != nil {
				return err
			}

			cli.RenderRows(os.Stdout, title, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "owner username")
	cmd.Flags().BoolVar(&withIDs, "with-ids", false, "include row ids (for delete)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
