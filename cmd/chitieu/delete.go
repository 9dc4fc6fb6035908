package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chitieu-app/chitieu/internal/cli"
	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	var (
		user string
		ids  []int64
		yes  bool
	)

	cmd := &cobra.Command{
		Use:       "delete <expenses|income>",
		Short:     "Delete transactions by id",
		Long: `Delete transactions by id. Rows are matched by both id and owner, so
an id belonging to another account is never touched. Before a multi-row
delete the total is read back in Vietnamese words for confirmation.`,
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

			// Bulk deletes get the amount read back in words first. AI
			// failure never blocks the deletion flow.
			if len(ids) > 1 && !yes {
				total := decimal.Zero
				txns, listErr := store.ListWithIDs(cmd.Context(), table, user)
				if listErr != nil {
					return listErr
				}
				selected := make(map[int64]bool, len(ids))
				for _, id := range ids {
					selected[id] = true
				}
				for _, t := range txns {
					if selected[t.ID] {
						total = total.Add(t.Amount)
					}
				}

				if client, aiErr := newAIClient(cmd); aiErr == nil {
					if words := client.AmountInWords(cmd.Context(), total); words != "" {
						fmt.Fprintf(os.Stderr, "Total to delete: %s (%s)\n", cli.FormatVND(total), words)
					}
				} else {
					slog.Debug("AI client unavailable for delete confirmation", "error", aiErr)
				}

				if !confirm(fmt.Sprintf("Delete %d rows totalling %s?", len(ids), cli.FormatVND(total))) {
					fmt.Fprintln(os.Stderr, cli.SubtleStyle.Render("Aborted."))
					return nil
				}
			}

			var deleted int64
			for _, id := range ids {
				affected, delErr := store.DeleteRecord(cmd.Context(), table, id, user)
				if delErr != nil {
					return delErr
				}
				if affected == 0 {
					fmt.Fprintln(os.Stderr, cli.WarningStyle.Render(fmt.Sprintf("id %d: nothing to delete", id)))
				}
				deleted += affected
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted %d row(s).", deleted)))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "owner username")
	cmd.Flags().Int64SliceVar(&ids, "id", nil, "row id (repeatable)")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the bulk-delete confirmation")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
