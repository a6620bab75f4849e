package serverutils

import (
	"math"
	"strconv"
	"time"

	"legal-chat-be/internal/pkg/logger"
	"legal-chat-be/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// RateLimitMiddleware checks one limiter per request. Authenticated requests
// are keyed by user id, everything else by client address.
func RateLimitMiddleware(limiter *ratelimit.Limiter, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identifier := ClientIdentifier(ctx)
		if userId, ok := ctx.Locals("user_id").(string); ok && userId != "" {
			identifier = userId
		}

		result, err := limiter.Allow(ctx.UserContext(), identifier)
		if err != nil {
			log.Warn("ratelimit", "limiter store error, failing open", map[string]interface{}{
				"identifier": identifier,
				"error":      err.Error(),
			})
		}

		ctx.Set("X-RateLimit-Limit", strconv.Itoa(limiter.Policy().MaxRequests))

		if !result.Allowed {
			retryAfter := int(math.Ceil(time.Until(result.ResetTime).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			ctx.Set("X-RateLimit-Remaining", "0")
			ctx.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime.UnixMilli(), 10))
			ctx.Set("Retry-After", strconv.Itoa(retryAfter))
			return NewRateLimitError()
		}

		ctx.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		ctx.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime.UnixMilli(), 10))
		return ctx.Next()
	}
}
