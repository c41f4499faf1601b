// handlers/user_routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"futureproof-backend/services"
	"futureproof-backend/workers"
)

func SetupUserRoutes(app *fiber.App, admin fiber.Router, jwtAuth fiber.Handler, userService *services.UserService, progressionService *services.ProgressionService, lifecycleService *services.LifecycleService, sleepTimers *workers.SleepTimerManager) {
	// Public routes — no token required
	app.Post("/auth/register", userService.RegisterHandler)
	app.Post("/auth/verify-otp", userService.VerifyOTPHandler)
	app.Post("/auth/login", userService.LoginHandler)

	// Secured routes — require a valid bearer token
	users := app.Group("/users", jwtAuth)

	users.Get("/me", userService.ProfileHandler)
	users.Patch("/me", userService.UpdateProfileHandler)
	users.Patch("/me/vitals", userService.UpdateVitalsHandler)
	users.Post("/me/progression", progressionService.GrantHandler)

	users.Post("/me/sleep-timer", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		var req struct {
			Active bool `json:"active"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Active {
			sleepTimers.Start(userID)
			return c.JSON(fiber.Map{"message": "Sleep timer started", "active": true})
		}
		if !sleepTimers.Stop(userID) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Sleep timer is not running"})
		}
		return c.JSON(fiber.Map{"message": "Sleep timer stopped", "active": false})
	})

	users.Get("/me/sleep-timer", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		return c.JSON(fiber.Map{"active": sleepTimers.Running(userID)})
	})

	// Admin routes
	admin.Get("/users", lifecycleService.ListUsersHandler)
	admin.Post("/users/:id/disable", lifecycleService.DisableHandler)
	admin.Post("/users/:id/enable", lifecycleService.EnableHandler)
	admin.Post("/progression/grant", progressionService.AdminGrantHandler)
}
