package llm

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
)

// VertexAnswerer generates answers through Gemini on Vertex AI using
// Application Default Credentials.
type VertexAnswerer struct {
	client *genai.Client
	model  string
}

// NewVertexAnswerer creates a Vertex AI Gemini backend.
func NewVertexAnswerer(ctx context.Context, projectID, location, model string) (*VertexAnswerer, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("create vertex genai client: %w", err)
	}
	return &VertexAnswerer{client: client, model: model}, nil
}

func (a *VertexAnswerer) Name() string { return "gemini" }

// Close releases the underlying client.
func (a *VertexAnswerer) Close() error { return a.client.Close() }

func (a *VertexAnswerer) Answer(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.GenerativeModel(a.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("vertex gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("vertex gemini returned no candidates")
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("vertex gemini returned no text content")
	}
	return out, nil
}
