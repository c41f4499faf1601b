// handlers/prediction_routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"futureproof-backend/services"
)

func SetupPredictionRoutes(app *fiber.App, jwtAuth fiber.Handler, predictionService *services.PredictionService, assessmentService *services.AssessmentService) {
	predictions := app.Group("/predictions", jwtAuth)
	predictions.Get("/me", predictionService.PredictHandler)
	predictions.Get("/most-common", predictionService.MostPredictedHandler)
	predictions.Get("/top", predictionService.TopPredictedHandler)

	assessments := app.Group("/assessments", jwtAuth)
	assessments.Post("/generate", assessmentService.GenerateHandler)
	assessments.Get("/", assessmentService.ListHandler)
}
