// Package types defines the shared data types for skill analysis.
package types

import "strings"

// Strength is the discrete classification of a category score.
type Strength string

// Strength levels ordered from weakest to strongest.
const (
	StrengthWeak     Strength = "Weak"
	StrengthModerate Strength = "Moderate"
	StrengthStrong   Strength = "Strong"
)

// Rank returns a numeric rank for ordering strengths (higher is stronger).
func (s Strength) Rank() int {
	switch s {
	case StrengthStrong:
		return 3
	case StrengthModerate:
		return 2
	case StrengthWeak:
		return 1
	default:
		return 0
	}
}

// CategoryDefinition is one entry of the static category vocabulary.
// Immutable after load.
type CategoryDefinition struct {
	Name            string   `json:"name"`
	CanonicalSkills []string `json:"skills"`
}

// SkillEmbedding pairs a normalized skill with its embedding vector.
// Owned transiently per request; never persisted.
type SkillEmbedding struct {
	Skill  string
	Vector []float32
}

// CategoryScore holds the match score and strength for a single category.
type CategoryScore struct {
	Score    float64  `json:"score"`
	Strength Strength `json:"strength"`
}

// RankedCategory is one entry of the ordered top-category list.
type RankedCategory struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// AnalysisResult is the full output of a skill analysis.
type AnalysisResult struct {
	// Skills are the normalized, deduplicated candidate skills in input order.
	Skills []string `json:"skills"`
	// CategoryAnalysis maps every vocabulary category to its score and strength.
	CategoryAnalysis map[string]CategoryScore `json:"category_analysis"`
	// TopCategories lists all categories sorted descending by score,
	// ties broken alphabetically. Callers truncate for presentation.
	TopCategories []RankedCategory `json:"top_categories"`
	// RecommendedSkills are canonical skills from Moderate/Strong categories
	// that the candidate does not already have.
	RecommendedSkills []string `json:"recommended_skills"`
	// DroppedSkills counts candidate skills excluded because their embedding
	// could not be computed. Diagnostic only; not part of the response body.
	DroppedSkills int `json:"-"`
}

// NormalizeSkill returns the canonical comparison form of a skill token:
// trimmed and case-folded. Returns "" for blank input.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSkills normalizes a list of skills, dropping blanks and collapsing
// duplicates while preserving first-seen order.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		n := NormalizeSkill(skill)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}
	return normalized
}

// SkillSet builds a membership set of normalized skills.
func SkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if n := NormalizeSkill(skill); n != "" {
			set[n] = true
		}
	}
	return set
}
