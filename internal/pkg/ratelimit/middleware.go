package ratelimit

import (
	"strconv"
	"time"

	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	Max    int
	Window time.Duration
	Prefix string
}

// New limits requests per client IP. A counter failure lets the request
// through.
func New(counter Counter, cfg Config, log logger.ILogger) fiber.Handler {
	if cfg.Prefix == "" {
		cfg.Prefix = "ratelimit:"
	}

	return func(ctx *fiber.Ctx) error {
		if cfg.Max <= 0 {
			return ctx.Next()
		}

		count, err := counter.Incr(ctx.UserContext(), cfg.Prefix+ctx.IP(), cfg.Window)
		if err != nil {
			log.Warn("RATE_LIMIT", "Counter unavailable, allowing request", map[string]interface{}{
				"ip":    ctx.IP(),
				"error": err.Error(),
			})
			return ctx.Next()
		}

		remaining := int64(cfg.Max) - count
		if remaining < 0 {
			remaining = 0
		}
		ctx.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
		ctx.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Max) {
			ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(cfg.Window.Seconds())))
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(serverutils.ErrorResponse("Too many requests, please try again later"))
		}

		return ctx.Next()
	}
}
