package middleware

import (
	"github.com/gofiber/fiber/v2"

	"futureproof-backend/models"
)

// AdminOnly rejects requests whose token does not carry the admin role.
// Must run after JWTAuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != string(models.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin access required",
			})
		}
		return c.Next()
	}
}
