package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/usersvc/internal/services"
)

const bearerTokenKey = "bearerToken"

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header into the request context. Verifying it is left to the handler.
func BearerToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return services.ErrInvalidToken
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return services.ErrInvalidToken
		}

		token := strings.TrimSpace(parts[1])
		if token == "" {
			return services.ErrInvalidToken
		}

		c.Locals(bearerTokenKey, token)
		return c.Next()
	}
}

// GetBearerToken returns the token stored by BearerToken.
func GetBearerToken(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals(bearerTokenKey).(string)
	return token, ok && token != ""
}
