// Package llm provides the pluggable answer-generation backends that
// consume a retrieval context block and return free text.
package llm

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/turath-search-api/internal/config"
)

// Answerer generates a free-text answer from a single prompt.
type Answerer interface {
	// Name identifies the backend in logs and failure placeholders
	Name() string

	// Answer returns the generated text or an error; callers bound the
	// call with a context timeout
	Answer(ctx context.Context, prompt string) (string, error)
}

// NewClaudeFromConfig returns the Claude answerer, or nil when no API key
// is configured. Absent credentials disable the answer field, never fail
// the process.
func NewClaudeFromConfig(cfg *config.Config) Answerer {
	if cfg.AnthropicAPIKey == "" {
		log.Info().Msg("ANTHROPIC_API_KEY not set, Claude answers disabled")
		return nil
	}
	return NewClaudeAnswerer(cfg.AnthropicAPIKey, cfg.ClaudeModel)
}

// NewGeminiFromConfig returns the Gemini answerer for the configured
// provider ("api" uses an API key, "vertex" uses ADC credentials), or nil
// when that provider's credentials are absent.
func NewGeminiFromConfig(ctx context.Context, cfg *config.Config) (Answerer, error) {
	switch cfg.GeminiProvider {
	case "vertex":
		if cfg.GCPProjectID == "" {
			log.Info().Msg("GCP_PROJECT_ID not set, Gemini answers disabled")
			return nil, nil
		}
		return NewVertexAnswerer(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.GeminiModel)
	default:
		if cfg.GeminiAPIKey == "" {
			log.Info().Msg("GEMINI_API_KEY not set, Gemini answers disabled")
			return nil, nil
		}
		return NewGeminiAnswerer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
