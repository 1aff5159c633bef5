package analysis

import (
	"sort"

	"github.com/haripriyarao26/find-a-path/internal/types"
)

// Rank orders all categories descending by score, breaking ties
// alphabetically by category name. The order is total and deterministic.
// Truncation to a display count is the caller's responsibility.
func Rank(scores map[string]types.CategoryScore) []types.RankedCategory {
	ranked := make([]types.RankedCategory, 0, len(scores))
	for name, cs := range scores {
		ranked = append(ranked, types.RankedCategory{
			Category: name,
			Score:    cs.Score,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Category < ranked[j].Category
	})

	return ranked
}
