package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haripriyarao26/find-a-path/internal/analysis"
	"github.com/haripriyarao26/find-a-path/internal/config"
	"github.com/haripriyarao26/find-a-path/internal/embedding"
	"github.com/haripriyarao26/find-a-path/internal/extraction"
	"github.com/haripriyarao26/find-a-path/internal/observability"
	"github.com/haripriyarao26/find-a-path/internal/vocabulary"
)

var (
	analyzeSkills     []string
	analyzeResume     string
	analyzeConfigPath string
	analyzeVocabulary string
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a skill list or resume file",
	Long: `Run the analysis pipeline once from the command line.

Skills come from --skills directly, or are extracted from the document given
by --resume (PDF, DOCX, TXT, or HTML).`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeSkills, "skills", nil, "Comma-separated skill list to analyze")
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to a resume document to extract skills from")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeVocabulary, "vocabulary", "", "Path to category vocabulary JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if len(analyzeSkills) == 0 && analyzeResume == "" {
		return fmt.Errorf("either --skills or --resume is required")
	}

	cfg := &config.Config{}
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if analyzeVocabulary != "" {
		cfg.Vocabulary = analyzeVocabulary
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	printer := observability.NewPrinter(os.Stdout)

	var extracted []string
	if analyzeResume != "" {
		data, err := os.ReadFile(analyzeResume)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		text, err := extraction.ExtractText(analyzeResume, data)
		if err != nil {
			return err
		}
		extracted = extraction.ExtractSkills(text)
		printer.PrintExtractedSkills(extracted)
	}

	skills := collectSkills(analyzeSkills, extracted)

	defs := vocabulary.Default()
	if cfg.Vocabulary != "" {
		loaded, err := vocabulary.Load(cfg.Vocabulary)
		if err != nil {
			return err
		}
		defs = loaded
	}

	ctx := context.Background()
	provider, err := embedding.NewGeminiProvider(ctx, apiKey, cfg.EmbeddingModel)
	if err != nil {
		return err
	}
	defer provider.Close()

	analyzer := analysis.NewAnalyzer(provider, defs, analysisOptions(cfg))

	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := analyzer.Analyze(ctx, skills)
	if err != nil {
		return err
	}

	if analyzeJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printer.PrintAnalysisResult(result)
	return nil
}

// collectSkills joins flag-supplied and extracted skills. The result is never
// nil: a resume that yields no skills is a valid zero-score analysis, not a
// missing skill list.
func collectSkills(flagSkills, extracted []string) []string {
	skills := make([]string, 0, len(flagSkills)+len(extracted))
	skills = append(skills, flagSkills...)
	skills = append(skills, extracted...)
	return skills
}
