package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/constants"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Scope       string        // Key scope, e.g. "auth"
	Limit       int           // Maximum number of requests per window
	Period      time.Duration // Window length
}

// incrWindow counts a hit and arms the window expiry in one step. A key left
// without a TTL is given one on its next hit.
var incrWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("TTL", KEYS[1]) < 0 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RateLimiterMiddleware is a fixed-window limiter keyed on route and client IP.
// When Redis is unavailable requests are let through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, config.Scope+":"+c.Path(), c.RealIP())

			window := int64(config.Period / time.Second)
			if window < 1 {
				window = 1
			}

			n, err := incrWindow.Run(ctx, config.RedisClient, []string{key}, window).Int64()
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.ErrorField(err),
				)
				return next(c)
			}

			count := int(n)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				ttl := config.RedisClient.TTL(ctx, key).Val()
				if ttl < 0 {
					ttl = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates the IP-based limiter used on the public auth routes
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Scope:       constants.RateLimitScope,
		Limit:       limit,
		Period:      period,
	})
}
