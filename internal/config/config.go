package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Boosts holds the query-construction boost weights. Exact magnitudes are
// tuning parameters; only their relative ordering (phrase > author phrase >
// fuzzy > AND-term) is relied on.
type Boosts struct {
	TextPhrase   float64 // exact phrase on text_content
	AuthorPhrase float64 // exact phrase on author_name
	TextTerm     float64 // per-term AND match on text_content
	PartialField float64 // text_content.partial weight in the fuzzy multi_match
	TitleField   float64 // book_title weight in the fuzzy multi_match
	AuthorField  float64 // author_name weight in the fuzzy multi_match
	AuthorExact  float64 // author_name weight in the author multi_match
	AuthorNgram  float64 // author_name.ngram weight in the author multi_match
}

// Config holds all application configuration
type Config struct {
	// API settings
	APITitle   string
	APIVersion string
	Port       string

	// CORS
	CORSOrigins []string

	// Logging: zerolog level name (debug, info, warn, error)
	LogLevel string

	// Elasticsearch
	ElasticCloudID   string
	ElasticAddresses []string
	ElasticUsername  string
	ElasticPassword  string
	IndexName        string
	SearchTimeout    time.Duration

	// Query tuning
	Boosts Boosts

	// Claude
	AnthropicAPIKey string
	ClaudeModel     string

	// Gemini: provider is "api" (API key) or "vertex" (ADC credentials)
	GeminiProvider string
	GeminiAPIKey   string
	GeminiModel    string
	GCPProjectID   string
	GCPLocation    string

	// Bound on each LLM answer call
	AnswerTimeout time.Duration
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		APITitle:   getEnv("API_TITLE", "Turath Search API"),
		APIVersion: getEnv("API_VERSION", "1.0.0"),
		Port:       getEnv("PORT", "5000"),

		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "*")),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		ElasticCloudID:   getEnv("CLOUD_ID", ""),
		ElasticAddresses: splitList(getEnv("ELASTIC_ADDRESSES", "")),
		ElasticUsername:  getEnv("ELASTIC_USERNAME", ""),
		ElasticPassword:  getEnv("ELASTIC_PASSWORD", ""),
		IndexName:        getEnv("INDEX_NAME", "islamic_texts"),
		SearchTimeout:    getEnvDuration("SEARCH_TIMEOUT", 30*time.Second),

		Boosts: Boosts{
			TextPhrase:   getEnvFloat("BOOST_TEXT_PHRASE", 200),
			AuthorPhrase: getEnvFloat("BOOST_AUTHOR_PHRASE", 150),
			TextTerm:     getEnvFloat("BOOST_TEXT_TERM", 0.5),
			PartialField: getEnvFloat("BOOST_PARTIAL_FIELD", 1),
			TitleField:   getEnvFloat("BOOST_TITLE_FIELD", 1.5),
			AuthorField:  getEnvFloat("BOOST_AUTHOR_FIELD", 1.2),
			AuthorExact:  getEnvFloat("BOOST_AUTHOR_EXACT", 5),
			AuthorNgram:  getEnvFloat("BOOST_AUTHOR_NGRAM", 3),
		},

		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		ClaudeModel:     getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-latest"),

		GeminiProvider: getEnv("GEMINI_PROVIDER", "api"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GCPProjectID:   getEnv("GCP_PROJECT_ID", ""),
		GCPLocation:    getEnv("GCP_LOCATION", "us-central1"),

		AnswerTimeout: getEnvDuration("ANSWER_TIMEOUT", 45*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return f
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return d
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	return splitList(value)
}
