// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Embedding provider
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name

	// Vocabulary
	Vocabulary string `json:"vocabulary,omitempty"` // Path to category vocabulary JSON (empty uses built-in)

	// Analysis tuning
	StrongThreshold   float64 `json:"strong_threshold,omitempty"`   // Inclusive lower bound of the Strong band (0.0-1.0)
	ModerateThreshold float64 `json:"moderate_threshold,omitempty"` // Inclusive lower bound of the Moderate band (0.0-1.0)
	TopSimilarities   int     `json:"top_similarities,omitempty"`   // Number of best similarities averaged per category
	RecommendationCap int     `json:"recommendation_cap,omitempty"` // Maximum recommended skills returned

	// Behavior
	EmbedConcurrency int `json:"embed_concurrency,omitempty"` // Concurrent embedding calls per request
	RequestTimeout   int `json:"request_timeout,omitempty"`   // Per-request analysis timeout in seconds

	// Server rate limiting
	RateLimit RateLimitConfig `json:"rate_limit"` // Per-client request budgets
}

// RateLimitConfig tunes per-client request budgeting on the HTTP server.
// Zero values fall back to the limiter defaults.
type RateLimitConfig struct {
	Disabled        bool `json:"disabled,omitempty"`         // Turn rate limiting off entirely
	DefaultLimit    int  `json:"default_limit,omitempty"`    // Requests per window for routes without their own budget
	DefaultWindow   int  `json:"default_window,omitempty"`   // Default budget window in seconds
	CleanupInterval int  `json:"cleanup_interval,omitempty"` // Idle bucket eviction period in seconds
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.StrongThreshold < 0 || c.StrongThreshold > 1 {
		return fmt.Errorf("config error: 'strong_threshold' must be between 0.0 and 1.0")
	}
	if c.ModerateThreshold < 0 || c.ModerateThreshold > 1 {
		return fmt.Errorf("config error: 'moderate_threshold' must be between 0.0 and 1.0")
	}
	if c.StrongThreshold > 0 && c.ModerateThreshold > c.StrongThreshold {
		return fmt.Errorf("config error: 'moderate_threshold' must not exceed 'strong_threshold'")
	}

	if c.TopSimilarities < 0 {
		return fmt.Errorf("config error: 'top_similarities' must be non-negative")
	}
	if c.RecommendationCap < 0 {
		return fmt.Errorf("config error: 'recommendation_cap' must be non-negative")
	}
	if c.EmbedConcurrency < 0 {
		return fmt.Errorf("config error: 'embed_concurrency' must be non-negative")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config error: 'request_timeout' must be non-negative")
	}

	if c.RateLimit.DefaultLimit < 0 {
		return fmt.Errorf("config error: 'rate_limit.default_limit' must be non-negative")
	}
	if c.RateLimit.DefaultWindow < 0 {
		return fmt.Errorf("config error: 'rate_limit.default_window' must be non-negative")
	}
	if c.RateLimit.CleanupInterval < 0 {
		return fmt.Errorf("config error: 'rate_limit.cleanup_interval' must be non-negative")
	}

	// Validate vocabulary path exists (if specified)
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TopSimilarities == 0 {
		result.TopSimilarities = defaults.TopSimilarities
	}
	if result.RecommendationCap == 0 {
		result.RecommendationCap = defaults.RecommendationCap
	}
	if result.EmbedConcurrency == 0 {
		result.EmbedConcurrency = defaults.EmbedConcurrency
	}
	if result.RequestTimeout == 0 {
		result.RequestTimeout = defaults.RequestTimeout
	}

	// Float fields: use default if zero
	if result.StrongThreshold == 0 {
		result.StrongThreshold = defaults.StrongThreshold
	}
	if result.ModerateThreshold == 0 {
		result.ModerateThreshold = defaults.ModerateThreshold
	}

	// Rate limit knobs; Disabled is a bool, so an unset file value cannot be
	// told apart from false and the file always wins there
	if result.RateLimit.DefaultLimit == 0 {
		result.RateLimit.DefaultLimit = defaults.RateLimit.DefaultLimit
	}
	if result.RateLimit.DefaultWindow == 0 {
		result.RateLimit.DefaultWindow = defaults.RateLimit.DefaultWindow
	}
	if result.RateLimit.CleanupInterval == 0 {
		result.RateLimit.CleanupInterval = defaults.RateLimit.CleanupInterval
	}

	return result
}
