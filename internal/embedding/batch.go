package embedding

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/haripriyarao26/find-a-path/internal/types"
)

// Batch embedding defaults.
const (
	// DefaultConcurrency bounds in-flight provider calls per request.
	DefaultConcurrency = 4
	// maxAttempts is the number of tries per skill before it is dropped.
	maxAttempts = 3
	// baseRetryDelay is the initial backoff delay, doubled per attempt.
	baseRetryDelay = 200 * time.Millisecond
)

// BatchResult holds the embeddings that were successfully computed plus the
// skills that had to be excluded.
type BatchResult struct {
	Embeddings []types.SkillEmbedding
	Dropped    []string
}

// BatchEmbed embeds every skill concurrently, bounded by the given concurrency
// limit. All calls are independent; the function returns only after every call
// has finished (or the context is done).
//
// A skill whose embedding fails after retries is excluded with a logged
// warning rather than failing the batch. If every skill fails, a retryable
// ProviderError is returned. Context cancellation or deadline expiry aborts
// the batch and returns the context error.
func BatchEmbed(ctx context.Context, provider Provider, skills []string, concurrency int) (*BatchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	result := &BatchResult{
		Embeddings: make([]types.SkillEmbedding, 0, len(skills)),
	}
	if len(skills) == 0 {
		return result, nil
	}

	// Preserve input order: slot per skill, compacted after the join.
	vectors := make([][]float32, len(skills))

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, skill := range skills {
		g.Go(func() error {
			vector, err := embedWithRetry(gCtx, provider, skill)
			if err != nil {
				// Abort the whole batch on cancellation, otherwise
				// exclude the skill and keep going.
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				log.Printf("Warning: excluding skill %q from analysis: %v", skill, err)
				mu.Lock()
				result.Dropped = append(result.Dropped, skill)
				mu.Unlock()
				return nil
			}
			vectors[i] = vector
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, skill := range skills {
		if vectors[i] != nil {
			result.Embeddings = append(result.Embeddings, types.SkillEmbedding{
				Skill:  skill,
				Vector: vectors[i],
			})
		}
	}

	if len(result.Embeddings) == 0 {
		return nil, &ProviderError{Message: "all embedding calls failed"}
	}

	return result, nil
}

// embedWithRetry calls the provider with bounded exponential backoff.
// Embedding calls are idempotent, so retrying a transient failure is safe.
func embedWithRetry(ctx context.Context, provider Provider, skill string) ([]float32, error) {
	var lastErr error
	delay := baseRetryDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		vector, err := provider.Embed(ctx, skill)
		if err == nil {
			return vector, nil
		}
		lastErr = err

		if attempt == maxAttempts || ctx.Err() != nil {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		delay *= 2
	}

	return nil, lastErr
}
