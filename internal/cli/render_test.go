package cli

import (
	"strings"
	"testing"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderRows(t *testing.T) {
	rows := []model.Row{
		{Label: "Cà phê", Category: "Ăn uống", Date: "2024-01-01", Amount: decimal.NewFromInt(50000)},
		{Label: "Taxi", Category: "Di chuyển", Date: "2024-01-02", Amount: decimal.NewFromInt(80000)},
	}

	var sb strings.Builder
	RenderRows(&sb, "Expense history", rows)
	out := sb.String()

	assert.Contains(t, out, "Cà phê")
	assert.Contains(t, out, "Di chuyển")
	assert.Contains(t, out, "Total:")
	// Both categories show up in the breakdown.
	assert.Contains(t, out, "Ăn uống")
}

func TestRenderRowsEmpty(t *testing.T) {
	var sb strings.Builder
	RenderRows(&sb, "Expense history", nil)
	assert.Contains(t, sb.String(), "(no entries)")
}

func TestRenderSummary(t *testing.T) {
	sum := model.Summary{
		Income:  decimal.NewFromInt(12000000),
		Expense: decimal.NewFromInt(130000),
	}

	var sb strings.Builder
	RenderSummary(&sb, "alice", sum)
	out := sb.String()

	assert.Contains(t, out, "Overview for alice")
	assert.Contains(t, out, "Income:")
	assert.Contains(t, out, "Expense:")
	assert.Contains(t, out, "Balance:")
	assert.Contains(t, out, FormatVND(decimal.NewFromInt(11870000)))
}

func TestFormatVND(t *testing.T) {
	got := FormatVND(decimal.NewFromInt(50000))
	assert.Contains(t, got, "50")
	assert.NotEmpty(t, got)
}
