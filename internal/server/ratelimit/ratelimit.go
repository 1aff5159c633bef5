// Package ratelimit enforces per-client request budgets on the HTTP API
// using token buckets.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// staleAfter is how long an idle client bucket survives before eviction.
const staleAfter = time.Hour

// bucket is a token bucket. Tokens refill continuously at perSec; a request
// spends one whole token.
type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	updated  time.Time
}

func newBucket(capacity int, perSec float64) *bucket {
	return &bucket{
		tokens:   float64(capacity),
		capacity: float64(capacity),
		perSec:   perSec,
		updated:  time.Now(),
	}
}

// take spends a token if one is available and reports the bucket state:
// whole tokens remaining and when the bucket will be full again.
func (b *bucket) take() (ok bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.updated).Seconds()*b.perSec)
	b.updated = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		missing := b.capacity - b.tokens
		reset = now.Add(time.Duration(missing / b.perSec * float64(time.Second)))
	}
	return ok, remaining, reset
}

// Info reports the rate limit state of one request, for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one token bucket per client and route. Safe for concurrent
// use; idle buckets are evicted in the background until Stop is called.
type Limiter struct {
	cfg *Config

	mu      sync.Mutex
	buckets map[string]*bucket
	seen    map[string]time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a limiter for the given settings. A nil config uses
// DefaultConfig.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		seen:    make(map[string]time.Time),
		stop:    make(chan struct{}),
	}

	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.evictLoop()
	}
	return l
}

// Allow reports whether a request from the client to the given route is
// within budget, along with the limit state for response headers.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled {
		return true, Info{Allowed: true}
	}

	ec := MatchEndpoint(path, method, l.cfg.Endpoints)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.cfg.DefaultLimit,
			Window: l.cfg.DefaultWindow,
		}
	}
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + "|" + method + " " + path
	ok, remaining, reset := l.bucketFor(key, ec).take()

	info := Info{
		Allowed:   ok,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !ok {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return ok, info
}

// bucketFor returns the client's bucket for a route, creating it on first use.
func (l *Limiter) bucketFor(key string, ec *EndpointConfig) *bucket {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seen[key] = now
	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	window := ec.Window
	if window <= 0 {
		window = time.Minute
	}

	b := newBucket(capacity, float64(ec.Limit)/window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) evictLoop() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.evictStale()
		case <-l.stop:
			return
		}
	}
}

// evictStale drops buckets that have not been used for staleAfter.
func (l *Limiter) evictStale() {
	cutoff := time.Now().Add(-staleAfter)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, last := range l.seen {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.seen, key)
		}
	}
}

// Stop terminates the background eviction loop. Idempotent.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
