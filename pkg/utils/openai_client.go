package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIModelClient implements ModelClientInterface via chat completions.
type OpenAIModelClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIModelClient(apiKey, model string) ModelClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIModelClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIModelClient) GenerateRecommendationJSON(ctx context.Context, systemInstruction, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIModelClient) Close() error {
	return nil
}
