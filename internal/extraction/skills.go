package extraction

import (
	"regexp"
	"strings"
)

// skillKeywords are common skill terms matched case-insensitively as
// substrings of candidate tokens.
var skillKeywords = []string{
	"python", "java", "javascript", "react", "node", "aws", "docker",
	"kubernetes", "sql", "mongodb", "postgresql", "git", "linux",
	"agile", "scrum", "machine learning", "ai", "data science",
	"typescript", "angular", "vue", "django", "flask", "fastapi",
	"html", "css", "tailwind", "bootstrap", "redux", "graphql",
	"rest api", "microservices", "ci/cd", "jenkins", "terraform",
	"azure", "gcp", "redis", "elasticsearch", "kafka", "spark",
}

// skillPatterns match well-known technology names on word boundaries.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|TypeScript|React|Node\.js|Angular|Vue|Django|Flask|FastAPI)\b`),
	regexp.MustCompile(`(?i)\b(?:AWS|Azure|GCP|Docker|Kubernetes|Terraform|Jenkins|Git)\b`),
	regexp.MustCompile(`(?i)\b(?:SQL|MongoDB|PostgreSQL|Redis|Elasticsearch|Kafka)\b`),
	regexp.MustCompile(`(?i)\b(?:Machine Learning|AI|Data Science|Deep Learning|NLP|Computer Vision)\b`),
}

// ExtractSkills scans resume text for skill terms using the keyword list and
// the technology-name patterns. Results are deduplicated case-insensitively,
// preserving first-seen spelling and order.
func ExtractSkills(text string) []string {
	var skills []string
	seen := make(map[string]bool)

	add := func(skill string) {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return
		}
		key := strings.ToLower(skill)
		if seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, skill)
	}

	// Keyword pass over whitespace-separated tokens and two-word windows,
	// since several keywords ("machine learning", "rest api") span words.
	tokens := strings.Fields(text)
	for i, token := range tokens {
		candidates := []string{token}
		if i+1 < len(tokens) {
			candidates = append(candidates, token+" "+tokens[i+1])
		}
		for _, candidate := range candidates {
			lower := strings.ToLower(strings.Trim(candidate, ".,;:()"))
			for _, keyword := range skillKeywords {
				if lower == keyword {
					add(strings.Trim(candidate, ".,;:()"))
				}
			}
		}
	}

	// Pattern pass for canonical spellings.
	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			add(match)
		}
	}

	return skills
}
