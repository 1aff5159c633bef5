// Package vocabulary provides the static category vocabulary: the named
// categories and their canonical skill sets that the analysis scores against.
package vocabulary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/haripriyarao26/find-a-path/internal/schemas"
	"github.com/haripriyarao26/find-a-path/internal/types"
)

// ConfigError indicates a malformed or empty category vocabulary.
// It is fatal at model-build time, never a per-request error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("vocabulary config error: %s", e.Message)
}

// file is the on-disk shape of a vocabulary override.
type file struct {
	Categories []entry `json:"categories" validate:"required,min=1,dive"`
}

type entry struct {
	Name   string   `json:"name" validate:"required"`
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
}

// Default returns the built-in category vocabulary.
func Default() []types.CategoryDefinition {
	return []types.CategoryDefinition{
		{Name: "Programming Languages", CanonicalSkills: []string{
			"Python", "Java", "JavaScript", "TypeScript", "C++", "Go", "Rust", "Swift", "Kotlin",
		}},
		{Name: "Frontend", CanonicalSkills: []string{
			"React", "Vue", "Angular", "HTML", "CSS", "Tailwind CSS", "Next.js", "Redux",
		}},
		{Name: "Backend", CanonicalSkills: []string{
			"Node.js", "Django", "Flask", "FastAPI", "Spring Boot", "Express.js", "REST API", "GraphQL",
		}},
		{Name: "Databases", CanonicalSkills: []string{
			"PostgreSQL", "MongoDB", "MySQL", "Redis", "Elasticsearch", "SQL", "NoSQL",
		}},
		{Name: "Cloud & DevOps", CanonicalSkills: []string{
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "CI/CD", "Jenkins", "Git",
		}},
		{Name: "Data Science", CanonicalSkills: []string{
			"Machine Learning", "Deep Learning", "Data Science", "AI", "NLP", "TensorFlow", "PyTorch", "Pandas",
		}},
		{Name: "Tools & Others", CanonicalSkills: []string{
			"Git", "Linux", "Agile", "Scrum", "Microservices", "System Design",
		}},
	}
}

// Load reads a vocabulary override from a JSON file. The document is checked
// against the vocabulary schema first, then against struct-level validation
// rules, so a misconfiguration fails with a precise field path.
func Load(path string) ([]types.CategoryDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	if err := schemas.ValidateBytes(Schema, data); err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("%s: %v", path, err)}
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	if err := validator.New().Struct(&f); err != nil {
		return nil, &ConfigError{Message: err.Error()}
	}

	defs := make([]types.CategoryDefinition, 0, len(f.Categories))
	for _, c := range f.Categories {
		defs = append(defs, types.CategoryDefinition{
			Name:            c.Name,
			CanonicalSkills: c.Skills,
		})
	}

	if err := Validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// Validate checks vocabulary invariants that schema validation cannot express:
// at least one category, no duplicate names, no category without skills.
func Validate(defs []types.CategoryDefinition) error {
	if len(defs) == 0 {
		return &ConfigError{Message: "vocabulary has no categories"}
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return &ConfigError{Message: "category with empty name"}
		}
		if seen[def.Name] {
			return &ConfigError{Message: fmt.Sprintf("duplicate category %q", def.Name)}
		}
		seen[def.Name] = true

		if len(def.CanonicalSkills) == 0 {
			return &ConfigError{Message: fmt.Sprintf("category %q has no canonical skills", def.Name)}
		}
	}
	return nil
}
