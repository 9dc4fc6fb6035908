package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AI type field values. The external model is instructed to answer with
// exactly these two strings.
const (
	AITypeIncome  = "Thu nhập"
	AITypeExpense = "Chi tiêu"
)

// Candidate is one row proposed by the AI classification bridge, held for
// manual review before it is committed to storage.
type Candidate struct {
	Date     time.Time
	User     string
	Content  string
	Category string
	Type     string
	Amount   decimal.Decimal
}

// Kind maps the candidate's type field onto a transaction kind. Anything
// other than the income marker is treated as an expense, matching the
// review screen's default.
func (c Candidate) Kind() Kind {
	if c.Type == AITypeIncome {
		return KindIncome
	}
	return KindExpense
}
