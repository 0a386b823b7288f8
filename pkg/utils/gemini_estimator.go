package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiEstimator implements TripEstimator using Google's Gemini models
type GeminiEstimator struct {
	client *genai.Client
	model  string
}

func NewGeminiEstimator(apiKey, model string) (*GeminiEstimator, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEstimator{client: client, model: model}, nil
}

func (g *GeminiEstimator) EstimateTrip(ctx context.Context, query EstimateQuery) (TripEstimate, error) {
	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetMaxOutputTokens(256)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(buildEstimatePrompt(query)))
	if err != nil {
		return TripEstimate{}, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return TripEstimate{}, fmt.Errorf("%w: no content generated by Gemini", ErrUnexpectedBehaviorOfAI)
	}

	return parseEstimate(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), query)
}

func (g *GeminiEstimator) Close() error {
	return g.client.Close()
}
