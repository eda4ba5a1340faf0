package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IdentifyMiddleware parses a bearer token when one is present and puts
// the claims into request locals. It never rejects a request; every
// endpoint stays open, matching the system's lookup-only login.
func IdentifyMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Locals("user_id", claims.UserID)
				c.Locals("user_type", claims.UserType)
			}
		}
		return c.Next()
	}
}
