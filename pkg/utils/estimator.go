package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// EstimateQuery describes the trip an AI provider should price.
type EstimateQuery struct {
	Destination string
	Days        int
	Travelers   int
	Currency    string
}

type TripEstimate struct {
	SuggestedBudget float64 `json:"suggested_budget"`
	SuggestedDays   int     `json:"suggested_days"`
	Currency        string  `json:"currency"`
	Notes           string  `json:"notes"`
}

// TripEstimator pre-fills budget and duration guesses for a new trip.
type TripEstimator interface {
	EstimateTrip(ctx context.Context, query EstimateQuery) (TripEstimate, error)
}

// NewTripEstimator picks the provider implementation. It returns nil, nil
// for provider "none".
func NewTripEstimator(provider, apiKey, model string) (TripEstimator, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIEstimator(apiKey, model), nil
	case "gemini":
		return NewGeminiEstimator(apiKey, model)
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported estimator provider: %s. Use 'openai', 'gemini' or 'none'", provider)
	}
}

func buildEstimatePrompt(q EstimateQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a travel budget assistant. Estimate a realistic total budget for a trip to %s", q.Destination)
	if q.Days > 0 {
		fmt.Fprintf(&b, " lasting %d days", q.Days)
	}
	travelers := max(q.Travelers, 1)
	fmt.Fprintf(&b, " for %d traveler(s).", travelers)
	currency := q.Currency
	if currency == "" {
		currency = "USD"
	}
	fmt.Fprintf(&b, `
Return JSON only, no markdown, matching exactly:
{"suggested_budget": 1200, "suggested_days": 4, "currency": "%s", "notes": "one short sentence"}
Rules:
- suggested_budget covers activities, food and local transport, not flights.
- suggested_days is the number of days you recommend`, currency)
	if q.Days > 0 {
		fmt.Fprintf(&b, " (use %d unless it is clearly unrealistic)", q.Days)
	}
	b.WriteString(".\n")
	return b.String()
}

// parseEstimate extracts the JSON object from a model response.
func parseEstimate(content string, q EstimateQuery) (TripEstimate, error) {
	content = cleanJSONResponse(content)
	var out TripEstimate
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return TripEstimate{}, fmt.Errorf("%w: %v", ErrUnexpectedBehaviorOfAI, err)
	}
	if out.SuggestedBudget <= 0 || out.SuggestedDays <= 0 {
		return TripEstimate{}, fmt.Errorf("%w: non-positive estimate %+v", ErrUnexpectedBehaviorOfAI, out)
	}
	if out.Currency == "" {
		out.Currency = q.Currency
	}
	return out, nil
}

// cleanJSONResponse removes markdown fences and surrounding prose.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	if end := findMatchingBrace(response, start); end != -1 {
		response = response[start : end+1]
	}
	return strings.TrimSpace(response)
}

func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
