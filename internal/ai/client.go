// Package ai bridges uploaded tabular data to an external language model
// for auto-classification. Both operations are best-effort: on any
// failure they log the cause and return an empty result, never an error
// the caller has to handle. There is no retry and no caching; the
// timeout is whatever the provider default is.
package ai

import (
	"context"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
)

// Client is the classification bridge consumed by the import flow.
type Client interface {
	// ParseTransactions sends raw CSV text to the model and returns the
	// transaction candidates it proposes, for manual review before
	// commit. Empty means nothing usable came back.
	ParseTransactions(ctx context.Context, csvText string) []model.Candidate

	// AmountInWords renders a numeric amount as Vietnamese words for
	// display confirmation before a bulk delete. Empty on failure; the
	// deletion flow proceeds without the confirmation text.
	AmountInWords(ctx context.Context, amount decimal.Decimal) string
}
