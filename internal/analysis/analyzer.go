package analysis

import (
	"context"
	"fmt"

	"github.com/haripriyarao26/find-a-path/internal/category"
	"github.com/haripriyarao26/find-a-path/internal/embedding"
	"github.com/haripriyarao26/find-a-path/internal/types"
)

// Analyzer runs the full analysis pipeline: embed candidate skills, score
// each category, classify, rank, and recommend missing skills.
//
// The category model is built at most once via the loader and shared across
// requests; everything else is per-request state. Safe for concurrent use.
type Analyzer struct {
	provider embedding.Provider
	loader   *category.Loader
	opts     Options
}

// NewAnalyzer creates an Analyzer over the given provider and vocabulary.
func NewAnalyzer(provider embedding.Provider, defs []types.CategoryDefinition, opts Options) *Analyzer {
	if opts.StrongThreshold == 0 && opts.ModerateThreshold == 0 {
		opts = DefaultOptions()
	}
	return &Analyzer{
		provider: provider,
		loader:   category.NewLoader(provider, defs),
		opts:     opts,
	}
}

// Warm builds the category model eagerly so a misconfigured vocabulary or an
// unreachable provider fails at startup instead of on the first request.
func (a *Analyzer) Warm(ctx context.Context) error {
	_, err := a.loader.Get(ctx)
	return err
}

// Analyze produces the competency profile for a candidate skill list.
//
// A nil skill list is rejected with a ValidationError (the field was missing
// entirely). An empty or all-blank list is valid input: every category scores
// 0 and no recommendations are produced, without calling the provider.
func (a *Analyzer) Analyze(ctx context.Context, skills []string) (*types.AnalysisResult, error) {
	if skills == nil {
		return nil, &ValidationError{Field: "skills", Message: "skill list is required"}
	}

	model, err := a.loader.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("category model unavailable: %w", err)
	}

	normalized := types.NormalizeSkills(skills)

	var embeddings []types.SkillEmbedding
	dropped := 0
	if len(normalized) > 0 {
		batch, err := embedding.BatchEmbed(ctx, a.provider, normalized, a.opts.EmbedConcurrency)
		if err != nil {
			return nil, err
		}
		embeddings = batch.Embeddings
		dropped = len(batch.Dropped)
	}

	scores := make(map[string]types.CategoryScore, len(model.Centroids()))
	for _, centroid := range model.Centroids() {
		score := scoreCategory(embeddings, centroid.Vector, a.opts.TopSimilarities)
		scores[centroid.Category] = types.CategoryScore{
			Score:    score,
			Strength: Classify(score, a.opts),
		}
	}

	return &types.AnalysisResult{
		Skills:            normalized,
		CategoryAnalysis:  scores,
		TopCategories:     Rank(scores),
		RecommendedSkills: Recommend(model.Definitions(), scores, types.SkillSet(normalized), a.opts.RecommendationCap),
		DroppedSkills:     dropped,
	}, nil
}
