package config

import "time"

// RateLimitConfig controls the fixed-window request limiter applied to the
// auth endpoints.  A window of e.g. 20 requests per minute per client IP is
// enough to blunt credential stuffing without bothering real users.
type RateLimitConfig struct {
	Enabled bool          // master switch; also disabled when Redis is unreachable
	Limit   int           // max requests per window per key
	Window  time.Duration // window length
	Prefix  string        // Redis key namespace
}

// LoadRateLimitConfig reads the RATE_LIMIT_* environment variables, falling
// back to defaults sized for login/signup traffic.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_REQUESTS", 20),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  envStr("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
