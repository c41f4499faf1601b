// handlers/reward_routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"futureproof-backend/services"
)

func SetupRewardRoutes(app *fiber.App, admin fiber.Router, jwtAuth fiber.Handler, rewardService *services.DailyRewardService) {
	rewards := app.Group("/rewards", jwtAuth)

	rewards.Get("/", rewardService.ListRewards)
	rewards.Post("/:id/claim", rewardService.ClaimHandler)

	admin.Post("/rewards", rewardService.CreateReward)
	admin.Put("/rewards/:id", rewardService.UpdateReward)
	admin.Delete("/rewards/:id", rewardService.DeleteReward)
}
