// handlers/wellness_routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"futureproof-backend/services"
)

func SetupWellnessRoutes(app *fiber.App, admin fiber.Router, jwtAuth fiber.Handler, wellnessService *services.WellnessService, trackingService *services.TrackingService) {
	app.Get("/activities", jwtAuth, wellnessService.ListActivities)
	app.Get("/meditation", jwtAuth, wellnessService.ListMeditation)

	quiz := app.Group("/quiz", jwtAuth)
	quiz.Get("/", wellnessService.RandomQuestions)
	quiz.Post("/submit", wellnessService.SubmitQuiz)
	quiz.Get("/history", wellnessService.QuizHistory)

	tasks := app.Group("/tasks", jwtAuth)
	tasks.Post("/complete", trackingService.CompleteTask)
	tasks.Get("/today", trackingService.ListTodayTasks)

	nutrition := app.Group("/nutrition", jwtAuth)
	nutrition.Post("/", trackingService.LogNutrition)
	nutrition.Get("/", trackingService.ListNutrition)

	admin.Post("/activities", wellnessService.CreateActivity)
	admin.Delete("/activities/:id", wellnessService.DeleteActivity)

	admin.Post("/meditation", wellnessService.CreateMeditation)
	admin.Delete("/meditation/:id", wellnessService.DeleteMeditation)

	admin.Post("/quiz/questions", wellnessService.CreateQuestions)
}
