package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haripriyarao26/find-a-path/internal/analysis"
	"github.com/haripriyarao26/find-a-path/internal/config"
	"github.com/haripriyarao26/find-a-path/internal/embedding"
	"github.com/haripriyarao26/find-a-path/internal/server"
	"github.com/haripriyarao26/find-a-path/internal/server/ratelimit"
)

var (
	servePort       int
	serveConfigPath string
	serveVocabulary string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume upload, skill extraction, and skill analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveVocabulary, "vocabulary", "", "Path to category vocabulary JSON file (empty uses the built-in vocabulary)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Flags beat the file, the file beats built-in defaults
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if serveVocabulary != "" {
		cfg.Vocabulary = serveVocabulary
	}
	merged := cfg.MergeWithDefaults(config.Config{
		Port:           8080,
		EmbeddingModel: embedding.DefaultModel,
		RequestTimeout: 30,
	})

	// Get API key from environment
	apiKey := merged.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	srv, err := server.New(server.Config{
		Port:           merged.Port,
		APIKey:         apiKey,
		EmbeddingModel: merged.EmbeddingModel,
		VocabularyPath: merged.Vocabulary,
		RequestTimeout: time.Duration(merged.RequestTimeout) * time.Second,
		Options:        analysisOptions(&merged),
		RateLimit:      rateLimitConfig(&merged),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// rateLimitConfig maps the config file's rate limit section onto limiter
// settings, keeping the built-in per-route budgets.
func rateLimitConfig(cfg *config.Config) *ratelimit.Config {
	rl := ratelimit.DefaultConfig()
	if cfg.RateLimit.Disabled {
		rl.Enabled = false
	}
	if cfg.RateLimit.DefaultLimit > 0 {
		rl.DefaultLimit = cfg.RateLimit.DefaultLimit
	}
	if cfg.RateLimit.DefaultWindow > 0 {
		rl.DefaultWindow = time.Duration(cfg.RateLimit.DefaultWindow) * time.Second
	}
	if cfg.RateLimit.CleanupInterval > 0 {
		rl.CleanupInterval = time.Duration(cfg.RateLimit.CleanupInterval) * time.Second
	}
	return rl
}

// analysisOptions maps file/flag configuration onto pipeline options,
// falling back to defaults for unset values.
func analysisOptions(cfg *config.Config) analysis.Options {
	opts := analysis.DefaultOptions()
	if cfg.StrongThreshold > 0 {
		opts.StrongThreshold = cfg.StrongThreshold
	}
	if cfg.ModerateThreshold > 0 {
		opts.ModerateThreshold = cfg.ModerateThreshold
	}
	if cfg.TopSimilarities > 0 {
		opts.TopSimilarities = cfg.TopSimilarities
	}
	if cfg.RecommendationCap > 0 {
		opts.RecommendationCap = cfg.RecommendationCap
	}
	if cfg.EmbedConcurrency > 0 {
		opts.EmbedConcurrency = cfg.EmbedConcurrency
	}
	return opts
}
