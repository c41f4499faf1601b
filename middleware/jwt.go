package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"futureproof-backend/utils"
)

// JWTAuthMiddleware validates the bearer token and attaches identity to the
// request context. Handlers read c.Locals("user_id") / ("email") / ("role").
func JWTAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing Authorization header",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header must be a Bearer token",
			})
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("email", claims.Subject)
		c.Locals("role", string(claims.Role))

		return c.Next()
	}
}
