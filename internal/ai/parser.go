package ai

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
)

// aiRow mirrors the JSON object shape the model is instructed to emit.
type aiRow struct {
	User     string      `json:"user"`
	Content  string      `json:"content"`
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
	Date     string      `json:"date"`
	Type     string      `json:"type"`
}

// parseCandidates turns the raw model response into reviewed-before-commit
// candidates. The whole response must be a JSON array; individual rows
// that fail amount or date coercion are skipped with a log line rather
// than failing the batch.
func parseCandidates(content string) ([]model.Candidate, error) {
	cleaned := cleanMarkdownWrapper(content)

	var rows []aiRow
	if err := json.Unmarshal([]byte(cleaned), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	candidates := make([]model.Candidate, 0, len(rows))
	for i, row := range rows {
		amount, err := decimal.NewFromString(row.Amount.String())
		if err != nil {
			slog.Warn("Skipping AI row with unparseable amount", "row", i, "amount", row.Amount)
			continue
		}

		date, err := time.Parse(model.DateLayout, strings.TrimSpace(row.Date))
		if err != nil {
			slog.Warn("Skipping AI row with unparseable date", "row", i, "date", row.Date)
			continue
		}

		candidates = append(candidates, model.Candidate{
			User:     strings.TrimSpace(row.User),
			Content:  strings.TrimSpace(row.Content),
			Amount:   amount.Abs(),
			Category: strings.TrimSpace(row.Category),
			Date:     date,
			Type:     strings.TrimSpace(row.Type),
		})
	}

	return candidates, nil
}

// cleanMarkdownWrapper strips the ```json fences models like to decorate
// responses with.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// cleanText trims whitespace from plain-text responses.
func cleanText(content string) string {
	return strings.TrimSpace(content)
}
