package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
)

// Ledger is the slice of the storage layer the importer writes through.
type Ledger interface {
	AddExpense(ctx context.Context, owner, label string, amount decimal.Decimal, category string, date time.Time) error
	AddIncome(ctx context.Context, owner, source string, amount decimal.Decimal, category string, date time.Time) error
}

// Mapping is the user-supplied column mapping: which source column feeds
// each canonical field, and whether the category is fixed for the whole
// file or taken per row.
type Mapping struct {
	LabelColumn    string
	AmountColumn   string
	DateColumn     string
	CategoryColumn string // per-row category; empty means FixedCategory applies
	FixedCategory  string
	Kind           model.Kind
}

// RowError reports one skipped row.
type RowError struct {
	Err error
	Row int // 1-based data row number
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Report summarizes an import run: how many rows were inserted and which
// were skipped. The run is not atomic across rows.
type Report struct {
	RowErrors []RowError
	Inserted  int
}

// Run iterates the table under the mapping and inserts one transaction
// per coercible row. A row that fails coercion is reported and skipped;
// the remaining rows still run. Progress is drawn to progress when it is
// non-nil.
func Run(ctx context.Context, ledger Ledger, owner string, table *Table, mapping Mapping, progress io.Writer) (Report, error) {
	labelIdx, err := table.ColumnIndex(mapping.LabelColumn)
	if err != nil {
		return Report{}, err
	}
	amountIdx, err := table.ColumnIndex(mapping.AmountColumn)
	if err != nil {
		return Report{}, err
	}
	dateIdx, err := table.ColumnIndex(mapping.DateColumn)
	if err != nil {
		return Report{}, err
	}

	categoryIdx := -1
	if mapping.CategoryColumn != "" {
		categoryIdx, err = table.ColumnIndex(mapping.CategoryColumn)
		if err != nil {
			return Report{}, err
		}
	}

	kind := mapping.Kind
	if kind == "" {
		kind = model.KindExpense
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(table.Rows),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Importing rows..."),
		)
	}

	var report Report
	for i, row := range table.Rows {
		if bar != nil {
			_ = bar.Add(1)
		}

		txn, rowErr := coerceRow(row, labelIdx, amountIdx, dateIdx, categoryIdx, mapping.FixedCategory)
		if rowErr != nil {
			report.RowErrors = append(report.RowErrors, RowError{Row: i + 1, Err: rowErr})
			continue
		}

		var insertErr error
		if kind == model.KindIncome {
			insertErr = ledger.AddIncome(ctx, owner, txn.label, txn.amount, txn.category, txn.date)
		} else {
			insertErr = ledger.AddExpense(ctx, owner, txn.label, txn.amount, txn.category, txn.date)
		}
		if insertErr != nil {
			report.RowErrors = append(report.RowErrors, RowError{Row: i + 1, Err: insertErr})
			continue
		}

		report.Inserted++
	}

	return report, nil
}

type coercedRow struct {
	date     time.Time
	label    string
	category string
	amount   decimal.Decimal
}

func coerceRow(row []string, labelIdx, amountIdx, dateIdx, categoryIdx int, fixedCategory string) (coercedRow, error) {
	cell := func(idx int) (string, error) {
		if idx >= len(row) {
			return "", fmt.Errorf("missing column %d", idx)
		}
		return row[idx], nil
	}

	labelCell, err := cell(labelIdx)
	if err != nil {
		return coercedRow{}, err
	}
	label := strings.TrimSpace(labelCell)
	if label == "" {
		return coercedRow{}, fmt.Errorf("empty label")
	}

	amountCell, err := cell(amountIdx)
	if err != nil {
		return coercedRow{}, err
	}
	amount, err := coerceAmount(amountCell)
	if err != nil {
		return coercedRow{}, err
	}

	dateCell, err := cell(dateIdx)
	if err != nil {
		return coercedRow{}, err
	}
	date, err := coerceDate(dateCell)
	if err != nil {
		return coercedRow{}, err
	}

	category := fixedCategory
	if categoryIdx >= 0 {
		categoryCell, cellErr := cell(categoryIdx)
		if cellErr != nil {
			return coercedRow{}, cellErr
		}
		category = strings.TrimSpace(categoryCell)
	}

	return coercedRow{
		label:    label,
		amount:   amount,
		date:     date,
		category: category,
	}, nil
}
