package ai

import (
	"testing"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates(t *testing.T) {
	response := "```json\n" + `[
		{"user": "alice", "content": "Cà phê", "amount": 50000, "category": "Ăn uống", "date": "2024-01-01", "type": "Chi tiêu"},
		{"user": "alice", "content": "Lương tháng 1", "amount": 12000000, "category": "Khác", "date": "2024-01-05", "type": "Thu nhập"}
	]` + "\n```"

	candidates, err := parseCandidates(response)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "Cà phê", candidates[0].Content)
	assert.Equal(t, "Ăn uống", candidates[0].Category)
	assert.Equal(t, model.KindExpense, candidates[0].Kind())
	assert.True(t, candidates[0].Amount.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "2024-01-01", candidates[0].Date.Format(model.DateLayout))

	assert.Equal(t, model.KindIncome, candidates[1].Kind())
}

func TestParseCandidatesNormalizesNegativeAmounts(t *testing.T) {
	response := `[{"user": "a", "content": "Taxi", "amount": -80000, "category": "Di chuyển", "date": "2024-03-02", "type": "Chi tiêu"}]`

	candidates, err := parseCandidates(response)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.True(t, candidates[0].Amount.Equal(decimal.NewFromInt(80000)))
}

func TestParseCandidatesSkipsBadRows(t *testing.T) {
	response := `[
		{"user": "a", "content": "ok", "amount": 1000, "category": "Khác", "date": "2024-01-01", "type": "Chi tiêu"},
		{"user": "a", "content": "bad date", "amount": 1000, "category": "Khác", "date": "01/01/2024", "type": "Chi tiêu"}
	]`

	candidates, err := parseCandidates(response)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "ok", candidates[0].Content)
}

func TestParseCandidatesMalformedJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "prose", content: "I could not parse this file."},
		{name: "object not array", content: `{"user": "a"}`},
		{name: "empty", content: ""},
		{name: "truncated", content: `[{"user": "a",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCandidates(tt.content)
			assert.Error(t, err)
		})
	}
}

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "json fence", content: "```json\n[]\n```", want: "[]"},
		{name: "bare fence", content: "```\n[]\n```", want: "[]"},
		{name: "no fence", content: "  []  ", want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.content))
		})
	}
}
