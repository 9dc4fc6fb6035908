package model

import "github.com/shopspring/decimal"

// Summary aggregates one owner's totals for the overview header.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Balance is income minus expense.
func (s Summary) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}
