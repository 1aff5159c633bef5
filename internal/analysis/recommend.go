package analysis

import (
	"sort"

	"github.com/haripriyarao26/find-a-path/internal/types"
)

// Recommend computes the skills canonical to the candidate's Moderate and
// Strong categories that the candidate does not already have. Comparison is
// on the normalized form; the canonical spelling is what gets returned.
//
// Results are ordered by the number of qualifying categories a skill appears
// in (descending), then alphabetically by the display spelling, and capped.
// No Moderate-or-better category yields an empty list, which is a valid
// outcome, not an error.
func Recommend(
	defs []types.CategoryDefinition,
	scores map[string]types.CategoryScore,
	candidateSkills map[string]bool,
	cap int,
) []string {
	if cap <= 0 {
		cap = DefaultRecommendationCap
	}

	// normalized skill -> canonical display form and qualifying-category count
	display := make(map[string]string)
	counts := make(map[string]int)

	for _, def := range defs {
		cs, ok := scores[def.Name]
		if !ok || cs.Strength.Rank() < types.StrengthModerate.Rank() {
			continue
		}
		seenInCategory := make(map[string]bool, len(def.CanonicalSkills))
		for _, skill := range def.CanonicalSkills {
			normalized := types.NormalizeSkill(skill)
			if normalized == "" || candidateSkills[normalized] || seenInCategory[normalized] {
				continue
			}
			seenInCategory[normalized] = true
			if _, ok := display[normalized]; !ok {
				display[normalized] = skill
			}
			counts[normalized]++
		}
	}

	recommended := make([]string, 0, len(counts))
	for normalized := range counts {
		recommended = append(recommended, normalized)
	}

	sort.Slice(recommended, func(i, j int) bool {
		if counts[recommended[i]] != counts[recommended[j]] {
			return counts[recommended[i]] > counts[recommended[j]]
		}
		// Tie-break on what the caller sees, not the normalized key
		return display[recommended[i]] < display[recommended[j]]
	})

	if len(recommended) > cap {
		recommended = recommended[:cap]
	}

	result := make([]string, len(recommended))
	for i, normalized := range recommended {
		result[i] = display[normalized]
	}
	return result
}
