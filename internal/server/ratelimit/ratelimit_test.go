package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeOnlyConfig(limit, burst int, window time.Duration) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/analyze-skills", Method: "POST", Limit: limit, Window: window, Burst: burst},
		},
	}
}

func TestAllow_BurstThenDeny(t *testing.T) {
	limiter := NewLimiter(analyzeOnlyConfig(30, 3, time.Minute))
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
		require.True(t, allowed, "request %d within burst", i+1)
		assert.Equal(t, 30, info.Limit)
	}

	allowed, info := limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	require.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
	assert.True(t, info.ResetTime.After(time.Now()))
}

func TestAllow_TokensRefill(t *testing.T) {
	// 2 tokens per second, capacity 1
	limiter := NewLimiter(analyzeOnlyConfig(2, 1, time.Second))
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	require.False(t, allowed)

	time.Sleep(600 * time.Millisecond)

	allowed, _ = limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	assert.True(t, allowed, "token should have refilled")
}

func TestAllow_ClientsHaveSeparateBudgets(t *testing.T) {
	limiter := NewLimiter(analyzeOnlyConfig(30, 1, time.Minute))
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	require.False(t, allowed, "first client exhausted")

	allowed, _ = limiter.Allow("10.0.0.2", "/analyze-skills", "POST")
	assert.True(t, allowed, "second client has its own bucket")
}

func TestAllow_UnmatchedRouteUsesDefaultBudget(t *testing.T) {
	cfg := analyzeOnlyConfig(30, 5, time.Minute)
	cfg.DefaultLimit = 2
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/somewhere-else", "GET")
		require.True(t, allowed)
		assert.Equal(t, 2, info.Limit)
	}

	allowed, _ := limiter.Allow("10.0.0.1", "/somewhere-else", "GET")
	assert.False(t, allowed)
}

func TestAllow_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/health", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestAllow_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestAllow_RemainingCountsDown(t *testing.T) {
	limiter := NewLimiter(analyzeOnlyConfig(30, 5, time.Minute))
	defer limiter.Stop()

	_, info := limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	assert.Equal(t, 4, info.Remaining)
	_, info = limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	assert.Equal(t, 3, info.Remaining)
}

func TestAllow_ConcurrentRequestsHonorBurst(t *testing.T) {
	limiter := NewLimiter(analyzeOnlyConfig(10, 10, time.Minute))
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("10.0.0.1", "/analyze-skills", "POST"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowedCount)
}

func TestStop_Idempotent(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())
	limiter.Stop()
	limiter.Stop()
}

func TestEvictStale(t *testing.T) {
	limiter := NewLimiter(analyzeOnlyConfig(30, 5, time.Minute))
	defer limiter.Stop()

	limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	require.Len(t, limiter.buckets, 1)

	// Age the bucket past the eviction cutoff
	limiter.mu.Lock()
	for key := range limiter.seen {
		limiter.seen[key] = time.Now().Add(-2 * staleAfter)
	}
	limiter.mu.Unlock()

	limiter.evictStale()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.buckets)
	assert.Empty(t, limiter.seen)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/analyze-skills", Method: "POST", Limit: 30, Window: time.Minute},
		{Path: "/admin/", Method: "GET", Limit: 10, Window: time.Minute},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{"exact match", "/analyze-skills", "POST", 30, false},
		{"method mismatch", "/analyze-skills", "GET", 0, true},
		{"prefix match", "/admin/users", "GET", 10, false},
		{"health special case", "/health", "GET", 0, false},
		{"no match", "/unknown", "POST", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestAllow_EndpointsDoNotShareBuckets(t *testing.T) {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/analyze-skills", Method: "POST", Limit: 30, Window: time.Minute, Burst: 1},
			{Path: "/extract-skills", Method: "POST", Limit: 120, Window: time.Minute, Burst: 1},
		},
	}
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/analyze-skills", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.1", "/extract-skills", "POST")
	assert.True(t, allowed, "routes must not share a bucket")
}
