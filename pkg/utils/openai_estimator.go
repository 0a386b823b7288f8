package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIEstimator struct {
	client *openai.Client
	model  string
}

func NewOpenAIEstimator(apiKey, model string) *OpenAIEstimator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIEstimator{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAIEstimator) EstimateTrip(ctx context.Context, query EstimateQuery) (TripEstimate, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.1,
		MaxTokens:   256,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildEstimatePrompt(query)},
		},
	})
	if err != nil {
		return TripEstimate{}, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return TripEstimate{}, fmt.Errorf("%w: no choices returned by OpenAI", ErrUnexpectedBehaviorOfAI)
	}

	return parseEstimate(resp.Choices[0].Message.Content, query)
}
