// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes the two transaction variants.
type Kind string

// Transaction kinds.
const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Table identifies one of the two ledger tables. It is a closed enum so a
// table name is never interpolated into SQL from user input.
type Table string

// Ledger tables.
const (
	TableExpenses Table = "expenses"
	TableIncome   Table = "income"
)

// ParseTable validates a table identifier against the closed enum.
func ParseTable(s string) (Table, error) {
	switch Table(s) {
	case TableExpenses:
		return TableExpenses, nil
	case TableIncome:
		return TableIncome, nil
	default:
		return "", fmt.Errorf("unknown table %q", s)
	}
}

// Kind returns the transaction kind stored in the table.
func (t Table) Kind() Kind {
	if t == TableIncome {
		return KindIncome
	}
	return KindExpense
}

// Transaction is a single expense or income entry. Label holds the item
// name for expenses and the income source for income.
type Transaction struct {
	Date     time.Time
	Owner    string
	Label    string
	Category string
	Kind     Kind
	Amount   decimal.Decimal
	ID       int64
}

// Row is the display shape of a transaction: the raw columns are renamed
// into the four fields the history view shows.
type Row struct {
	Label    string
	Category string
	Date     string
	Amount   decimal.Decimal
}

// DateLayout is the canonical date format for stored and exchanged dates.
const DateLayout = "2006-01-02"
