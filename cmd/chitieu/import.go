package main

import (
	"fmt"
	"os"

	"github.com/chitieu-app/chitieu/internal/cli"
	"github.com/chitieu-app/chitieu/internal/importer"
	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var (
		user        string
		labelCol    string
		amountCol   string
		dateCol     string
		categoryCol string
		category    string
		kind        string
		useAI       bool
		commit      bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-import transactions from a CSV/XLSX/OFX file",
		Long: `Bulk-import transactions. The file is read fully into memory, then
each row is coerced and inserted; rows that fail coercion are reported
individually and skipped, the batch never aborts.

With --ai the raw table is sent to Gemini instead, which proposes
classified transactions for review; add --commit to save them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()

			table, err := importer.ReadFile(path, f)
			if err != nil {
				return err
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			if err := requireUser(cmd, store, user); err != nil {
				return err
			}

			if useAI {
				return runAIImport(cmd, store, user, table, commit)
			}

			mapping := importer.Mapping{
				LabelColumn:    labelCol,
				AmountColumn:   amountCol,
				DateColumn:     dateCol,
				CategoryColumn: categoryCol,
				FixedCategory:  category,
				Kind:           model.Kind(kind),
			}

			report, err := importer.Run(cmd.Context(), store, user, table, mapping, os.Stderr)
			if err != nil {
				return err
			}

			printReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "owner username")
	cmd.Flags().StringVar(&labelCol, "label-col", "name", "source column for the label")
	cmd.Flags().StringVar(&amountCol, "amount-col", "amount", "source column for the amount")
	cmd.Flags().StringVar(&dateCol, "date-col", "date", "source column for the date")
	cmd.Flags().StringVar(&categoryCol, "category-col", "", "source column for a per-row category")
	cmd.Flags().StringVar(&category, "category", "Khác", "fixed category when no category column is mapped")
	cmd.Flags().StringVar(&kind, "kind", string(model.KindExpense), "transaction kind (expense, income)")
	cmd.Flags().BoolVar(&useAI, "ai", false, "let Gemini classify the rows")
	cmd.Flags().BoolVar(&commit, "commit", false, "save AI-classified rows instead of only showing them")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runAIImport(cmd *cobra.Command, store importer.Ledger, user string, table *importer.Table, commit bool) error {
	client, err := newAIClient(cmd)
	if err != nil {
		return err
	}

	candidates, err := importer.Classify(cmd.Context(), client, table)
	if err != nil {
		return err
	}
	cli.RenderCandidates(os.Stdout, candidates)
	if len(candidates) == 0 {
		return nil
	}

	if !commit {
		fmt.Fprintln(os.Stderr, cli.SubtleStyle.Render("Re-run with --commit to save these rows."))
		return nil
	}

	printReport(importer.CommitCandidates(cmd.Context(), store, user, candidates))
	return nil
}

func printReport(report importer.Report) {
	for _, rowErr := range report.RowErrors {
		fmt.Fprintln(os.Stderr, cli.WarningStyle.Render(rowErr.Error()))
	}
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d row(s), %d skipped.", report.Inserted, len(report.RowErrors))))
}
