package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Cooldown limits a command to one invocation per account per window, using
// a Redis bucket keyed by command name and account id. Commands behind this
// middleware (beg) may assume the window has passed.
func Cooldown(cache *redis.Client, command string, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next() // no-op without Redis
		}
		account := c.Params("id")
		if account == "" {
			return c.Next()
		}

		key := fmt.Sprintf("cooldown:%s:%s", command, account)
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt == 1 {
			cache.Expire(c.UserContext(), key, window)
		}
		if cnt > 1 {
			ttl, err := cache.TTL(c.UserContext(), key).Result()
			if err != nil || ttl < 0 {
				ttl = window
			}
			c.Set(fiber.HeaderRetryAfter, fmt.Sprintf("%d", int(ttl.Seconds())))
			return fiber.NewError(http.StatusTooManyRequests, fmt.Sprintf("%s is on cooldown", command))
		}
		return c.Next()
	}
}
