package ai

import (
	"context"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
)

// MockClient is a test double for the classification bridge.
type MockClient struct {
	Candidates []model.Candidate
	Words      string
	ParseCalls int
	WordsCalls int
}

// ParseTransactions returns the canned candidates.
func (m *MockClient) ParseTransactions(_ context.Context, _ string) []model.Candidate {
	m.ParseCalls++
	return m.Candidates
}

// AmountInWords returns the canned reading.
func (m *MockClient) AmountInWords(_ context.Context, _ decimal.Decimal) string {
	m.WordsCalls++
	return m.Words
}
