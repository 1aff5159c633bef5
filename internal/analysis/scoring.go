package analysis

import (
	"sort"

	"github.com/haripriyarao26/find-a-path/internal/category"
	"github.com/haripriyarao26/find-a-path/internal/types"
)

// scoreCategory computes a category's match score from the candidate's skill
// embeddings: cosine similarity of every skill vector against the centroid,
// clamped to [0,1] (negative similarity is no match), then the mean of the
// top-k similarities. The top-k mean keeps one strong skill from dominating
// while keeping irrelevant skills from diluting the score.
//
// Zero candidate skills score 0 for every category.
func scoreCategory(skillEmbeddings []types.SkillEmbedding, centroid []float32, topK int) float64 {
	if len(skillEmbeddings) == 0 {
		return 0
	}
	if topK <= 0 {
		topK = DefaultTopSimilarities
	}

	similarities := make([]float64, 0, len(skillEmbeddings))
	for _, se := range skillEmbeddings {
		sim := category.CosineSimilarity(se.Vector, centroid)
		if sim < 0 {
			sim = 0
		}
		if sim > 1 {
			sim = 1
		}
		similarities = append(similarities, sim)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(similarities)))
	if len(similarities) > topK {
		similarities = similarities[:topK]
	}

	sum := 0.0
	for _, sim := range similarities {
		sum += sim
	}
	return sum / float64(len(similarities))
}

// Classify maps a score to its strength band. Band lower bounds are
// inclusive, so classification is total and monotonic over [0,1].
func Classify(score float64, opts Options) types.Strength {
	switch {
	case score >= opts.StrongThreshold:
		return types.StrengthStrong
	case score >= opts.ModerateThreshold:
		return types.StrengthModerate
	default:
		return types.StrengthWeak
	}
}
