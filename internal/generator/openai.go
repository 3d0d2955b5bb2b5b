package generator

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Model is the chat model used for every generation request.
const Model = "gpt-4.1"

// OpenAIBackend sends generation requests to the OpenAI chat completions API.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates a backend authenticated with the given API key.
func NewOpenAIBackend(apiKey string) *OpenAIBackend {
	return &OpenAIBackend{
		client: openai.NewClient(apiKey),
		model:  Model,
	}
}

// Generate implements Backend.
func (b *OpenAIBackend) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
