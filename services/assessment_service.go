// services/assessment_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"futureproof-backend/models"
)

// AssessmentService re-scores the stored prediction against the day's
// completed tasks and nutrition log.
type AssessmentService struct {
	DB       *gorm.DB
	Groq     *GroqClient
	Tracking *TrackingService
}

func NewAssessmentService(db *gorm.DB, groq *GroqClient, tracking *TrackingService) *AssessmentService {
	return &AssessmentService{DB: db, Groq: groq, Tracking: tracking}
}

func buildAssessmentPrompt(tasks []models.TaskCompletion, nutrition *models.NutritionLog, prediction *models.Prediction) string {
	taskLines := ""
	for _, t := range tasks {
		taskLines += fmt.Sprintf("- %s (%s)\n", t.TaskName, t.Category)
	}
	diseaseLines := ""
	for _, d := range prediction.PredictedDiseases {
		diseaseLines += fmt.Sprintf("- %s: %s\n", d.Condition, d.Details)
	}

	return fmt.Sprintf(
		"User's completed tasks for today:\n%s\n"+
			"User's nutritional tracking responses:\nMeals: %v\nWater cups: %d\nNotes: %s\n\n"+
			"Existing predicted diseases:\n%s\n"+
			"Based on the user's performance today, update the likelihoods of the predicted diseases.\n"+
			"Provide structured responses in Markdown and use bulleted lists for each section without any bold text:\n\n"+
			"### Updated Predicted Diseases with likelihood in percentage\n"+
			"* Disease Name: Old Likelihood (%%) → New Likelihood (%%), Reason for change\n\n"+
			"### New Recommendations\n",
		taskLines, nutrition.Meals, nutrition.WaterCups, nutrition.Notes, diseaseLines,
	)
}

// GenerateHandler creates or updates today's assessment for the caller.
// It refuses until a prediction exists and both a task completion and a
// nutrition log were recorded today.
func (s *AssessmentService) GenerateHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	now := time.Now().UTC()

	var prediction models.Prediction
	if err := s.DB.First(&prediction, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No prediction found. Please create an entry for your prediction first.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	tasks, err := s.Tracking.TasksCompletedToday(userID, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	if len(tasks) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No tasks completed today. Complete at least one task to generate an assessment.",
		})
	}

	nutrition, err := s.Tracking.TodayNutrition(userID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No nutritional tracking found. Please log your meals to get a better assessment.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	content, err := s.Groq.Complete(c.Context(), buildAssessmentPrompt(tasks, nutrition, &prediction))
	if err != nil {
		logrus.Errorf("assessment upstream failure for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Assessment service unavailable"})
	}
	updated, recommendations := ParseAssessmentReport(content)

	// One assessment per day, updated in place on re-generation.
	var assessment models.DailyAssessment
	err = s.DB.Where("user_id = ? AND date >= ?", userID, startOfDay(now)).First(&assessment).Error
	switch {
	case err == nil:
		assessment.TaskSummary = tasks
		assessment.NutritionAnalysis = nutrition
		assessment.UpdatedPredictions = updated
		assessment.Recommendations = recommendations
		if err := s.DB.Save(&assessment).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update assessment"})
		}
		return c.JSON(fiber.Map{"message": "Daily assessment updated successfully.", "data": assessment})
	case errors.Is(err, gorm.ErrRecordNotFound):
		assessment = models.DailyAssessment{
			UserID:             userID,
			Date:               now,
			TaskSummary:        tasks,
			NutritionAnalysis:  nutrition,
			UpdatedPredictions: updated,
			Recommendations:    recommendations,
		}
		if err := s.DB.Create(&assessment).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store assessment"})
		}
		return c.JSON(fiber.Map{"message": "Daily assessment generated successfully.", "data": assessment})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
}

// ListHandler returns the caller's assessment history, newest first.
func (s *AssessmentService) ListHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var assessments []models.DailyAssessment
	if err := s.DB.Where("user_id = ?", userID).Order("date DESC").Find(&assessments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch assessments"})
	}
	return c.JSON(assessments)
}
