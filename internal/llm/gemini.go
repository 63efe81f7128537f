package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAnswerer generates answers through the Gemini API with an API key.
type GeminiAnswerer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnswerer creates a Gemini API backend for the given model.
func NewGeminiAnswerer(ctx context.Context, apiKey, model string) (*GeminiAnswerer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiAnswerer{client: client, model: model}, nil
}

func (a *GeminiAnswerer) Name() string { return "gemini" }

// Close releases the underlying client.
func (a *GeminiAnswerer) Close() error { return a.client.Close() }

func (a *GeminiAnswerer) Answer(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.GenerativeModel(a.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return geminiResponseText(resp)
}

func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return out, nil
}
