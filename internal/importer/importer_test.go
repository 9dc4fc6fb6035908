package importer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/chitieu-app/chitieu/internal/ai"
	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger records inserts and can reject labels on demand.
type fakeLedger struct {
	rejectLabel string
	expenses    []model.Transaction
	income      []model.Transaction
}

func (f *fakeLedger) AddExpense(_ context.Context, owner, label string, amount decimal.Decimal, category string, date time.Time) error {
	if label == f.rejectLabel {
		return fmt.Errorf("rejected %q", label)
	}
	f.expenses = append(f.expenses, model.Transaction{Owner: owner, Label: label, Amount: amount, Category: category, Date: date, Kind: model.KindExpense})
	return nil
}

func (f *fakeLedger) AddIncome(_ context.Context, owner, source string, amount decimal.Decimal, category string, date time.Time) error {
	f.income = append(f.income, model.Transaction{Owner: owner, Label: source, Amount: amount, Category: category, Date: date, Kind: model.KindIncome})
	return nil
}

func testTable() *Table {
	return &Table{
		Columns: []string{"Nội dung", "Số tiền", "Ngày"},
		Rows: [][]string{
			{"Cà phê", "50000", "2024-01-01"},
			{"Taxi", "80,000", "02/01/2024"},
			{"Hỏng", "not-a-number", "2024-01-03"},
			{"Thiếu ngày", "10000", "sometime"},
		},
	}
}

func TestRunPartialFailure(t *testing.T) {
	ledger := &fakeLedger{}
	mapping := Mapping{
		LabelColumn:   "Nội dung",
		AmountColumn:  "Số tiền",
		DateColumn:    "Ngày",
		FixedCategory: "Khác",
	}

	report, err := Run(context.Background(), ledger, "alice", testTable(), mapping, nil)
	require.NoError(t, err)

	// Two coercible rows insert; the other two are reported per row and
	// the batch still finishes.
	assert.Equal(t, 2, report.Inserted)
	require.Len(t, report.RowErrors, 2)
	assert.Equal(t, 3, report.RowErrors[0].Row)
	assert.Equal(t, 4, report.RowErrors[1].Row)

	require.Len(t, ledger.expenses, 2)
	assert.Equal(t, "Cà phê", ledger.expenses[0].Label)
	assert.Equal(t, "Khác", ledger.expenses[0].Category)
	assert.True(t, ledger.expenses[1].Amount.Equal(decimal.NewFromInt(80000)))
}

func TestRunPerRowCategory(t *testing.T) {
	ledger := &fakeLedger{}
	table := &Table{
		Columns: []string{"name", "amount", "date", "cat"},
		Rows: [][]string{
			{"Cà phê", "50000", "2024-01-01", "Ăn uống"},
			{"Taxi", "80000", "2024-01-02", "Di chuyển"},
		},
	}
	mapping := Mapping{
		LabelColumn:    "name",
		AmountColumn:   "amount",
		DateColumn:     "date",
		CategoryColumn: "cat",
	}

	report, err := Run(context.Background(), ledger, "alice", table, mapping, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, "Ăn uống", ledger.expenses[0].Category)
	assert.Equal(t, "Di chuyển", ledger.expenses[1].Category)
}

func TestRunIncomeKind(t *testing.T) {
	ledger := &fakeLedger{}
	table := &Table{
		Columns: []string{"name", "amount", "date"},
		Rows:    [][]string{{"Lương", "12000000", "2024-01-05"}},
	}
	mapping := Mapping{
		LabelColumn:   "name",
		AmountColumn:  "amount",
		DateColumn:    "date",
		FixedCategory: "Lương",
		Kind:          model.KindIncome,
	}

	report, err := Run(context.Background(), ledger, "alice", table, mapping, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)
	assert.Empty(t, ledger.expenses)
	require.Len(t, ledger.income, 1)
	assert.Equal(t, "Lương", ledger.income[0].Label)
}

func TestRunInsertFailureIsReportedPerRow(t *testing.T) {
	ledger := &fakeLedger{rejectLabel: "Taxi"}
	table := &Table{
		Columns: []string{"name", "amount", "date"},
		Rows: [][]string{
			{"Cà phê", "50000", "2024-01-01"},
			{"Taxi", "80000", "2024-01-02"},
		},
	}
	mapping := Mapping{LabelColumn: "name", AmountColumn: "amount", DateColumn: "date", FixedCategory: "Khác"}

	report, err := Run(context.Background(), ledger, "alice", table, mapping, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)
	require.Len(t, report.RowErrors, 1)
	assert.Equal(t, 2, report.RowErrors[0].Row)
}

func TestRunUnmappedColumn(t *testing.T) {
	ledger := &fakeLedger{}
	mapping := Mapping{LabelColumn: "missing", AmountColumn: "Số tiền", DateColumn: "Ngày"}

	_, err := Run(context.Background(), ledger, "alice", testTable(), mapping, nil)
	assert.Error(t, err)
}

func TestCommitCandidates(t *testing.T) {
	ledger := &fakeLedger{}
	candidates := []model.Candidate{
		{User: "alice", Content: "Cà phê", Amount: decimal.NewFromInt(50000), Category: "Ăn uống", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Type: model.AITypeExpense},
		{User: "alice", Content: "Lương", Amount: decimal.NewFromInt(12000000), Category: "Khác", Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Type: model.AITypeIncome},
	}

	report := CommitCandidates(context.Background(), ledger, "alice", candidates)
	assert.Equal(t, 2, report.Inserted)
	assert.Len(t, ledger.expenses, 1)
	assert.Len(t, ledger.income, 1)
}

func TestClassifyThenCommit(t *testing.T) {
	client := &ai.MockClient{
		Candidates: []model.Candidate{
			{User: "alice", Content: "Cà phê", Amount: decimal.NewFromInt(50000), Category: "Ăn uống", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Type: model.AITypeExpense},
		},
	}

	candidates, err := Classify(context.Background(), client, testTable())
	require.NoError(t, err)
	assert.Equal(t, 1, client.ParseCalls)
	require.Len(t, candidates, 1)

	ledger := &fakeLedger{}
	report := CommitCandidates(context.Background(), ledger, "alice", candidates)
	assert.Equal(t, 1, report.Inserted)
	require.Len(t, ledger.expenses, 1)
	assert.Equal(t, "Cà phê", ledger.expenses[0].Label)
}

func TestClassifyEmptyResponse(t *testing.T) {
	client := &ai.MockClient{}

	candidates, err := Classify(context.Background(), client, testTable())
	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.Equal(t, 1, client.ParseCalls)
}
