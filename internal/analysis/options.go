// Package analysis implements the skill scoring, classification, ranking,
// and recommendation pipeline.
package analysis

// Default tuning values. Treated as configurable constants, not hard-coded
// law; Options overrides any of them.
const (
	// DefaultStrongThreshold is the minimum score classified Strong.
	DefaultStrongThreshold = 0.75
	// DefaultModerateThreshold is the minimum score classified Moderate.
	DefaultModerateThreshold = 0.5
	// DefaultTopSimilarities is how many of the best per-skill similarities
	// are averaged into a category score.
	DefaultTopSimilarities = 3
	// DefaultRecommendationCap is the maximum number of recommended skills.
	DefaultRecommendationCap = 10
)

// Options holds the tunable parameters of the analysis pipeline.
type Options struct {
	// StrongThreshold is the inclusive lower bound of the Strong band.
	StrongThreshold float64
	// ModerateThreshold is the inclusive lower bound of the Moderate band.
	ModerateThreshold float64
	// TopSimilarities is the number of best per-skill similarities averaged
	// into a category score.
	TopSimilarities int
	// RecommendationCap limits the recommended skill list.
	RecommendationCap int
	// EmbedConcurrency bounds concurrent embedding calls per request.
	// Zero uses the embedding package default.
	EmbedConcurrency int
}

// DefaultOptions returns the default pipeline parameters.
func DefaultOptions() Options {
	return Options{
		StrongThreshold:   DefaultStrongThreshold,
		ModerateThreshold: DefaultModerateThreshold,
		TopSimilarities:   DefaultTopSimilarities,
		RecommendationCap: DefaultRecommendationCap,
	}
}
