package ratelimit

import "time"

// EndpointConfig is the request budget for one route.
type EndpointConfig struct {
	Path   string        // Route path; a trailing "/" matches by prefix
	Method string        // HTTP method
	Limit  int           // Sustained requests per Window; 0 means unlimited
	Window time.Duration // Refill window
	Burst  int           // Bucket capacity; 0 falls back to Limit
}

// Config holds the limiter settings. Zero-valued fields of a caller-built
// Config are not defaulted; start from DefaultConfig and override.
type Config struct {
	Enabled         bool
	DefaultLimit    int           // Budget for routes without an endpoint entry
	DefaultWindow   time.Duration // Window for the default budget
	CleanupInterval time.Duration // How often stale client buckets are evicted
	Endpoints       []EndpointConfig
}

// DefaultConfig returns the limiter settings used when the config file does
// not override them.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints:       DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default per-route budgets.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: analysis fans out to the embedding provider (strictest limit)
		{Path: "/analyze-skills", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Tier 2: local extraction work
		{Path: "/upload-resume", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/extract-skills", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// GET /health is unlimited; the matcher special-cases it.
	}
}
