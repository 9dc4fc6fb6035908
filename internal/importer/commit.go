package importer

import (
	"context"

	"github.com/chitieu-app/chitieu/internal/ai"
	"github.com/chitieu-app/chitieu/internal/model"
)

// Classify serializes the table to CSV and asks the bridge to propose
// transactions. Per the bridge contract an unusable response comes back
// as an empty slice; only CSV serialization can fail here.
func Classify(ctx context.Context, client ai.Client, table *Table) ([]model.Candidate, error) {
	csvText, err := table.ToCSV()
	if err != nil {
		return nil, err
	}
	return client.ParseTransactions(ctx, csvText), nil
}

// CommitCandidates writes reviewed AI candidates through the ledger,
// dispatching on each candidate's type. Same partial-failure semantics as
// Run: a rejected candidate is reported and the rest still commit.
func CommitCandidates(ctx context.Context, ledger Ledger, owner string, candidates []model.Candidate) Report {
	var report Report
	for i, c := range candidates {
		var err error
		if c.Kind() == model.KindIncome {
			err = ledger.AddIncome(ctx, owner, c.Content, c.Amount, c.Category, c.Date)
		} else {
			err = ledger.AddExpense(ctx, owner, c.Content, c.Amount, c.Category, c.Date)
		}
		if err != nil {
			report.RowErrors = append(report.RowErrors, RowError{Row: i + 1, Err: err})
			continue
		}
		report.Inserted++
	}
	return report
}
