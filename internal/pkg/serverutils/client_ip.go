package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIdentifier extracts a stable caller identity for rate limiting on
// unauthenticated routes. Proxy headers are trusted over the socket address
// since the service runs behind a load balancer.
func ClientIdentifier(ctx *fiber.Ctx) string {
	if forwarded := ctx.Get("X-Forwarded-For"); forwarded != "" {
		if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
			return first
		}
	}
	if realIP := ctx.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	return "unknown"
}
