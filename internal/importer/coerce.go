package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when coercing a cell to a calendar date.
// Uploaded files come from banks and hand-kept spreadsheets, so both ISO
// and day-first forms show up.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"01/02/2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// coerceDate parses a cell into a calendar date.
func coerceDate(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", cell)
}

// coerceAmount parses a cell into a non-negative decimal. Thousands
// separators and a currency suffix are tolerated; negative amounts are
// normalized positive, matching the sign rule the AI path uses.
func coerceAmount(cell string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(cell)
	cleaned = strings.TrimSuffix(cleaned, "đ")
	cleaned = strings.TrimSuffix(cleaned, "VND")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unrecognized amount %q: %w", cell, err)
	}
	return d.Abs(), nil
}
