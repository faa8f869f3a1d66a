package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per client key (remote address
// here). Limiters are created lazily with the configured defaults.
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewClientLimiter(config Config) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func (c *ClientLimiter) GetLimiter(key string) *rate.Limiter {
	c.mu.RLock()
	limiter, exists := c.limiters[key]
	c.mu.RUnlock()

	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists = c.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(c.defaults.RequestsPerSecond), c.defaults.BurstSize)
	c.limiters[key] = limiter
	return limiter
}

// Allow reports whether the client may proceed right now; requests are
// rejected rather than queued.
func (c *ClientLimiter) Allow(key string) bool {
	return c.GetLimiter(key).Allow()
}
