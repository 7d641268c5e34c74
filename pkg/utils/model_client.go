package utils

import (
	"context"
	"fmt"
	"strings"
)

// ModelClientInterface is the single capability the recommendation pipeline
// needs from a generative model provider: one completion that is expected to
// carry a JSON object. Transport errors come back raw; classification into
// the failure taxonomy happens at the service boundary.
type ModelClientInterface interface {
	GenerateRecommendationJSON(ctx context.Context, systemInstruction, prompt string) (string, error)
	Close() error
}

// NewModelClient creates a provider-specific client. Returns
// ErrConfigurationMissing when no credential is supplied, so startup fails
// before any request can be attempted.
func NewModelClient(provider, apiKey, model string) (ModelClientInterface, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrConfigurationMissing
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIModelClient(apiKey, model), nil
	case "gemini":
		return NewGeminiModelClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
