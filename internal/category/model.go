// Package category derives and caches the per-category reference vectors
// (centroids) that candidate skills are scored against.
package category

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/haripriyarao26/find-a-path/internal/embedding"
	"github.com/haripriyarao26/find-a-path/internal/types"
	"github.com/haripriyarao26/find-a-path/internal/vocabulary"
)

// buildConcurrency bounds in-flight embedding calls during a model build.
const buildConcurrency = 4

// Centroid is a category's semantic reference point: the element-wise mean of
// its canonical-skill embeddings.
type Centroid struct {
	Category string
	Vector   []float32
}

// Model holds one centroid per vocabulary category. Immutable once built and
// shared read-only across requests; no locking is needed for reads.
type Model struct {
	definitions []types.CategoryDefinition
	centroids   []Centroid
	dimension   int
}

// Build embeds every canonical skill of every category and derives the
// centroids. Unlike per-request embedding, a build is strict: any failure is a
// configuration error and aborts the build, because a model with missing
// centroids cannot produce meaningful scores.
func Build(ctx context.Context, provider embedding.Provider, defs []types.CategoryDefinition) (*Model, error) {
	if err := vocabulary.Validate(defs); err != nil {
		return nil, err
	}

	// One vector slot per canonical skill, filled concurrently.
	vectors := make([][][]float32, len(defs))
	for i, def := range defs {
		vectors[i] = make([][]float32, len(def.CanonicalSkills))
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(buildConcurrency)

	for i, def := range defs {
		for j, skill := range def.CanonicalSkills {
			g.Go(func() error {
				vector, err := provider.Embed(gCtx, skill)
				if err != nil {
					return fmt.Errorf("building centroid for %q: %w", def.Name, err)
				}
				vectors[i][j] = vector
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	model := &Model{
		definitions: defs,
		centroids:   make([]Centroid, 0, len(defs)),
	}
	for i, def := range defs {
		centroid := Mean(vectors[i])
		if centroid == nil {
			return nil, fmt.Errorf("inconsistent embedding dimensions for category %q", def.Name)
		}
		if model.dimension == 0 {
			model.dimension = len(centroid)
		}
		if len(centroid) != model.dimension {
			return nil, fmt.Errorf("centroid dimension mismatch for category %q: got %d, want %d",
				def.Name, len(centroid), model.dimension)
		}
		model.centroids = append(model.centroids, Centroid{
			Category: def.Name,
			Vector:   centroid,
		})
	}

	// Deterministic iteration order for scoring and ranking.
	sort.Slice(model.centroids, func(i, j int) bool {
		return model.centroids[i].Category < model.centroids[j].Category
	})

	return model, nil
}

// Centroids returns the centroids sorted alphabetically by category name.
// The returned slice must not be modified.
func (m *Model) Centroids() []Centroid {
	return m.centroids
}

// Definitions returns the vocabulary the model was built from.
func (m *Model) Definitions() []types.CategoryDefinition {
	return m.definitions
}

// Dimension returns the embedding dimension shared by all centroids.
func (m *Model) Dimension() int {
	return m.dimension
}

// Loader builds the model at most once and caches it for the process
// lifetime. Concurrent callers on a cold start share a single build; the
// build outcome, success or failure, is cached.
type Loader struct {
	provider    embedding.Provider
	definitions []types.CategoryDefinition

	once  sync.Once
	model *Model
	err   error
}

// NewLoader creates a lazy loader for the given provider and vocabulary.
func NewLoader(provider embedding.Provider, defs []types.CategoryDefinition) *Loader {
	return &Loader{
		provider:    provider,
		definitions: defs,
	}
}

// Get returns the shared model, building it on first use.
func (l *Loader) Get(ctx context.Context) (*Model, error) {
	l.once.Do(func() {
		l.model, l.err = Build(ctx, l.provider, l.definitions)
	})
	return l.model, l.err
}
