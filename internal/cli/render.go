package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
)

// FormatVND renders an amount in Vietnamese đồng for display.
func FormatVND(amount decimal.Decimal) string {
	return money.New(amount.Round(0).IntPart(), money.VND).Display()
}

// RenderRows writes the history table: the four display fields, a total,
// and a per-category breakdown bar chart.
func RenderRows(w io.Writer, title string, rows []model.Row) {
	fmt.Fprintln(w, TitleStyle.Render(title))

	if len(rows) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("(no entries)"))
		return
	}

	labelWidth, categoryWidth := columnWidths(rows)

	header := fmt.Sprintf("%-*s  %-*s  %-10s  %s", labelWidth, "Label", categoryWidth, "Category", "Date", "Amount")
	fmt.Fprintln(w, TableHeaderStyle.Render(header))

	total := decimal.Zero
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  %-*s  %-10s  %s\n",
			labelWidth, r.Label,
			categoryWidth, r.Category,
			r.Date,
			FormatVND(r.Amount))
		total = total.Add(r.Amount)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", SubtleStyle.Render("Total:"), FormatVND(total))
	fmt.Fprintln(w)
	renderCategoryBars(w, rows, total)
}

// RenderSummary writes the overview header: total income, total
// expense, and the running balance.
func RenderSummary(w io.Writer, owner string, sum model.Summary) {
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Overview for %s", owner)))
	fmt.Fprintf(w, "%s  %s\n", SubtleStyle.Render("Income: "), FormatVND(sum.Income))
	fmt.Fprintf(w, "%s  %s\n", SubtleStyle.Render("Expense:"), FormatVND(sum.Expense))
	fmt.Fprintf(w, "%s  %s\n", SubtleStyle.Render("Balance:"), FormatVND(sum.Balance()))
}

// RenderTransactions writes the edit-screen table, id included.
func RenderTransactions(w io.Writer, title string, txns []model.Transaction) {
	fmt.Fprintln(w, TitleStyle.Render(title))

	if len(txns) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("(no entries)"))
		return
	}

	fmt.Fprintln(w, TableHeaderStyle.Render(fmt.Sprintf("%6s  %-24s  %-14s  %-10s  %s", "ID", "Label", "Category", "Date", "Amount")))
	for _, t := range txns {
		fmt.Fprintf(w, "%6d  %-24s  %-14s  %-10s  %s\n",
			t.ID, t.Label, t.Category, t.Date.Format(model.DateLayout), FormatVND(t.Amount))
	}
}

// RenderCandidates writes AI-proposed rows for review before commit.
func RenderCandidates(w io.Writer, candidates []model.Candidate) {
	fmt.Fprintln(w, TitleStyle.Render("AI-classified transactions"))

	if len(candidates) == 0 {
		fmt.Fprintln(w, WarningStyle.Render("The AI returned nothing usable."))
		return
	}

	fmt.Fprintln(w, TableHeaderStyle.Render(fmt.Sprintf("%-10s  %-24s  %-14s  %-10s  %-10s  %s", "Type", "Content", "Category", "Date", "User", "Amount")))
	for _, c := range candidates {
		fmt.Fprintf(w, "%-10s  %-24s  %-14s  %-10s  %-10s  %s\n",
			c.Type, c.Content, c.Category, c.Date.Format(model.DateLayout), c.User, FormatVND(c.Amount))
	}
}

const barWidth = 30

// renderCategoryBars draws per-category sums as proportional bars, the
// text stand-in for the history view's chart.
func renderCategoryBars(w io.Writer, rows []model.Row, total decimal.Decimal) {
	sums := make(map[string]decimal.Decimal)
	for _, r := range rows {
		sums[r.Category] = sums[r.Category].Add(r.Amount)
	}

	categories := make([]string, 0, len(sums))
	for c := range sums {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return sums[categories[i]].GreaterThan(sums[categories[j]])
	})

	categoryWidth := 0
	for _, c := range categories {
		if len(c) > categoryWidth {
			categoryWidth = len(c)
		}
	}

	for _, c := range categories {
		width := 0
		if total.IsPositive() {
			width = int(sums[c].Div(total).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart())
		}
		if width < 1 {
			width = 1
		}
		bar := BarStyle.Render(strings.Repeat("█", width))
		fmt.Fprintf(w, "%-*s  %s %s\n", categoryWidth, c, bar, FormatVND(sums[c]))
	}
}

func columnWidths(rows []model.Row) (labelWidth, categoryWidth int) {
	labelWidth, categoryWidth = len("Label"), len("Category")
	for _, r := range rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
		if len(r.Category) > categoryWidth {
			categoryWidth = len(r.Category)
		}
	}
	return labelWidth, categoryWidth
}
