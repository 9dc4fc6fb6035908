package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	table, err := ParseTable("expenses")
	require.NoError(t, err)
	assert.Equal(t, TableExpenses, table)
	assert.Equal(t, KindExpense, table.Kind())

	table, err = ParseTable("income")
	require.NoError(t, err)
	assert.Equal(t, TableIncome, table)
	assert.Equal(t, KindIncome, table.Kind())

	// Anything outside the closed enum is rejected, never passed through
	// to SQL.
	_, err = ParseTable("users")
	assert.Error(t, err)
	_, err = ParseTable("expenses; DROP TABLE users")
	assert.Error(t, err)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(KindExpense, "Ăn uống"))
	assert.True(t, ValidCategory(KindExpense, "Khác"))
	assert.False(t, ValidCategory(KindExpense, "Lương"))

	assert.True(t, ValidCategory(KindIncome, "Lương"))
	assert.True(t, ValidCategory(KindIncome, "Khác"))
	assert.False(t, ValidCategory(KindIncome, "Ăn uống"))
}

func TestCandidateKind(t *testing.T) {
	assert.Equal(t, KindIncome, Candidate{Type: AITypeIncome}.Kind())
	assert.Equal(t, KindExpense, Candidate{Type: AITypeExpense}.Kind())
	// Unknown types default to expense, the review screen's default.
	assert.Equal(t, KindExpense, Candidate{Type: "???"}.Kind())
}
