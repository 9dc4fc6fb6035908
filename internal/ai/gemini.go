package ai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// Default model names. The parse task carries the whole uploaded file, so
// it gets the larger model; reading an amount aloud gets the cheap one.
const (
	defaultParseModel = "gemini-2.5-pro"
	defaultWordsModel = "gemini-2.5-flash"
)

// Config holds the Gemini bridge settings.
type Config struct {
	// APIKey overrides the GEMINI_API_KEY environment variable.
	APIKey string
	// ParseModel is the model used for transaction parsing.
	ParseModel string
	// WordsModel is the model used for amount-in-words rendering.
	WordsModel string
}

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	client     *genai.Client
	parseModel string
	wordsModel string
}

// NewGeminiClient initializes the Gemini client. This is the only place
// the bridge can fail loudly: without a working client there is nothing
// to degrade to.
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	var clientCfg *genai.ClientConfig
	if cfg.APIKey != "" {
		clientCfg = &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	parseModel := cfg.ParseModel
	if parseModel == "" {
		parseModel = defaultParseModel
	}
	wordsModel := cfg.WordsModel
	if wordsModel == "" {
		wordsModel = defaultWordsModel
	}

	return &GeminiClient{
		client:     client,
		parseModel: parseModel,
		wordsModel: wordsModel,
	}, nil
}

// ParseTransactions sends the uploaded CSV text with the fixed accounting
// prompt and parses the JSON array that comes back.
func (g *GeminiClient) ParseTransactions(ctx context.Context, csvText string) []model.Candidate {
	resp, err := g.client.Models.GenerateContent(ctx, g.parseModel, genai.Text(parsePrompt(csvText)), nil)
	if err != nil {
		slog.Error("AI parse request failed", "model", g.parseModel, "error", err)
		return nil
	}

	text := resp.Text()
	if text == "" {
		slog.Error("AI parse returned empty response", "model", g.parseModel)
		return nil
	}

	candidates, err := parseCandidates(text)
	if err != nil {
		slog.Error("AI parse response was not usable", "model", g.parseModel, "error", err)
		return nil
	}
	return candidates
}

// AmountInWords asks the model to read the amount in Vietnamese.
func (g *GeminiClient) AmountInWords(ctx context.Context, amount decimal.Decimal) string {
	resp, err := g.client.Models.GenerateContent(ctx, g.wordsModel, genai.Text(wordsPrompt(amount)), nil)
	if err != nil {
		slog.Error("AI amount-in-words request failed", "model", g.wordsModel, "error", err)
		return ""
	}
	return cleanText(resp.Text())
}
