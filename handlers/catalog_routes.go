// handlers/catalog_routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"futureproof-backend/services"
)

func SetupCatalogRoutes(app *fiber.App, admin fiber.Router, jwtAuth fiber.Handler, assetService *services.AssetService, avatarService *services.AvatarService, contentService *services.ContentService) {
	assets := app.Group("/assets", jwtAuth)
	assets.Get("/", assetService.ListAssets)
	assets.Get("/defaults", assetService.ListDefaultAssets)
	assets.Get("/:id", assetService.GetAsset)

	avatars := app.Group("/avatars", jwtAuth)
	avatars.Get("/", avatarService.ListAvatars)
	avatars.Get("/:id", avatarService.GetAvatar)

	achievements := app.Group("/achievements", jwtAuth)
	achievements.Get("/", contentService.ListAchievements)
	achievements.Post("/:id/earn", contentService.EarnAchievement)

	quotes := app.Group("/quotes", jwtAuth)
	quotes.Get("/", contentService.ListQuotes)
	quotes.Get("/random", contentService.RandomQuote)

	admin.Post("/assets", assetService.CreateAsset)
	admin.Put("/assets/:id", assetService.UpdateAsset)
	admin.Delete("/assets/:id", assetService.DeleteAsset)
	admin.Post("/assets/defaults", assetService.SetDefaultAsset)

	admin.Post("/avatars", avatarService.CreateAvatar)
	admin.Delete("/avatars/:id", avatarService.DeleteAvatar)

	admin.Post("/achievements", contentService.CreateAchievement)
	admin.Delete("/achievements/:id", contentService.DeleteAchievement)

	admin.Post("/quotes", contentService.CreateQuote)
	admin.Delete("/quotes/:id", contentService.DeleteQuote)
}
