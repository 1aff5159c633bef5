// Package embedding provides the embedding provider abstraction and the
// concurrent batch embedder used by the analysis core.
package embedding

import (
	"context"
	"fmt"
)

// Provider is an abstraction over embedding model services.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Embed maps a text to a fixed-dimension embedding vector.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the provider.
	Close() error
}

// ProviderError indicates the embedding provider was unreachable or returned
// malformed output. Requests failing with it are safe to retry.
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding provider: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding provider: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
