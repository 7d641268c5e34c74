package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiModelClient implements ModelClientInterface on Google's Gemini models.
type GeminiModelClient struct {
	client *genai.Client
	model  string
}

func NewGeminiModelClient(apiKey, model string) (ModelClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiModelClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateRecommendationJSON issues a single completion. Low temperature and
// the JSON response MIME type keep the reply deterministic and fence-free;
// the raw text is still returned as-is so the caller owns validation.
func (c *GeminiModelClient) GenerateRecommendationJSON(ctx context.Context, systemInstruction, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	if systemInstruction != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiModelClient) Close() error {
	return c.client.Close()
}
