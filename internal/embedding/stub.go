package embedding

import (
	"context"
	"fmt"
	"sync"
)

// StaticProvider is a deterministic in-memory Provider used in tests and by
// the CLI dry-run mode. It returns preassigned vectors keyed by exact text.
type StaticProvider struct {
	mu      sync.Mutex
	vectors map[string][]float32
	calls   int
}

// NewStaticProvider creates a StaticProvider from a text -> vector map.
func NewStaticProvider(vectors map[string][]float32) *StaticProvider {
	return &StaticProvider{vectors: vectors}
}

// Embed returns the preassigned vector for the text, or an error if none exists.
func (p *StaticProvider) Embed(_ context.Context, text string) ([]float32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	vector, ok := p.vectors[text]
	if !ok {
		return nil, &ProviderError{Message: fmt.Sprintf("no vector registered for %q", text)}
	}
	return vector, nil
}

// Calls reports how many Embed calls have been made.
func (p *StaticProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// Close is a no-op.
func (p *StaticProvider) Close() error {
	return nil
}
