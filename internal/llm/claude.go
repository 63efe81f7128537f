package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const claudeMaxTokens = 1024

// ClaudeAnswerer generates answers through the Anthropic Messages API.
type ClaudeAnswerer struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaudeAnswerer creates a Claude backend for the given model.
func NewClaudeAnswerer(apiKey, model string) *ClaudeAnswerer {
	return &ClaudeAnswerer{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

func (a *ClaudeAnswerer) Name() string { return "claude" }

// Answer sends the prompt as a single user message and concatenates the
// text blocks of the reply.
func (a *ClaudeAnswerer) Answer(ctx context.Context, prompt string) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: claudeMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude message: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("claude returned no text content")
	}
	return sb.String(), nil
}
