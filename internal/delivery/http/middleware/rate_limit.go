package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for fixed-window rate limiting.
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis counters
	KeyPrefix string
}

// rateLimitEntry tracks request counts for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on the first hit of a window.
// KEYS[1] = counter key, ARGV[1] = TTL seconds. Returns [count, ttl].
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func startCleanup() {
	go func() {
		for range time.Tick(5 * time.Minute) {
			now := time.Now()
			rateLimitStore.Range(func(key, value any) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				expired := now.After(entry.resetAt)
				entry.mu.Unlock()
				if expired {
					rateLimitStore.Delete(key)
				}
				return true
			})
		}
	}()
}

// RateLimit limits requests per client IP over a fixed window, using Redis
// when available and an in-memory counter otherwise. Used on the write
// endpoints (signup, apply, post job) to blunt abuse.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var count int
		var retryAfter time.Duration

		if rdb := redis.Client(); rdb != nil {
			res, err := rdb.Eval(c.Request.Context(), rateLimitScript, []string{key},
				int(cfg.Window.Seconds())).Result()
			if vals, ok := res.([]interface{}); err == nil && ok && len(vals) == 2 {
				n, _ := vals[0].(int64)
				ttl, _ := vals[1].(int64)
				count = int(n)
				retryAfter = time.Duration(ttl) * time.Second
			} else {
				// Redis hiccup: fall through to the in-memory counter
				count, retryAfter = inMemoryCount(key, cfg.Window)
			}
		} else {
			count, retryAfter = inMemoryCount(key, cfg.Window)
		}

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			response.Error(c, http.StatusTooManyRequests,
				fmt.Sprintf("Too many requests. Try again in %d seconds.", int(retryAfter.Seconds())), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func inMemoryCount(key string, window time.Duration) (int, time.Duration) {
	now := time.Now()
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count, time.Until(entry.resetAt)
}
