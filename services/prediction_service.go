// services/prediction_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"futureproof-backend/models"
)

type PredictionService struct {
	DB   *gorm.DB
	Groq *GroqClient
}

func NewPredictionService(db *gorm.DB, groq *GroqClient) *PredictionService {
	return &PredictionService{DB: db, Groq: groq}
}

// buildPrompt formats the user's health profile into the fixed prompt the
// parser expects the answer shape for.
func buildPrompt(user *models.User) string {
	return fmt.Sprintf(
		"User Information:\n"+
			"Username: %s\n"+
			"Email: %s\n"+
			"Age: %d\n"+
			"Gender: %s\n"+
			"Height: %.1f\n"+
			"Weight: %.1f\n"+
			"Environment: %s\n"+
			"Vices: %s\n"+
			"Genetic Diseases: %s\n"+
			"Lifestyle: %s\n"+
			"Food Intake: %s\n"+
			"Sleep Hours: %.1f\n"+
			"Activeness: %s\n"+
			"Please provide a structured response in Markdown format with the following sections:\n"+
			"### 1. Predicted Diseases with likelihood in percentage\n"+
			"### 2. Positive Habits\n"+
			"### 3. Areas for Improvement\n"+
			"### 4. Recommendations\n"+
			"Use bulleted lists for each section without using any bold text to condition name and details.",
		user.Username, user.Email, user.Age, user.Gender, user.Height, user.Weight,
		user.Environment, strings.Join(user.Vices, ", "), strings.Join(user.GeneticDiseases, ", "),
		strings.Join(user.Lifestyle, ", "), strings.Join(user.FoodIntake, ", "),
		user.SleepHours, user.Activeness,
	)
}

func userSummary(user *models.User) string {
	return fmt.Sprintf(
		"The user, %s, is a %d-year-old %s with a %s lifestyle, %s environment, and existing %s. "+
			"They have vices such as %s, follow a %s diet, and get %.1f hours of sleep.",
		user.Username, user.Age, user.Gender, user.Activeness, user.Environment,
		strings.Join(user.GeneticDiseases, ", "), strings.Join(user.Vices, ", "),
		strings.Join(user.FoodIntake, ", "), user.SleepHours,
	)
}

// Predict returns the stored prediction for the user, generating one via
// the LLM when none exists. force discards the stored row first.
func (s *PredictionService) Predict(c *fiber.Ctx, user *models.User, force bool) (*models.Prediction, error) {
	if force {
		if err := s.DB.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Prediction{}).Error; err != nil {
			return nil, err
		}
	} else {
		var existing models.Prediction
		err := s.DB.First(&existing, "user_id = ?", user.ID).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	content, err := s.Groq.Complete(c.Context(), buildPrompt(user))
	if err != nil {
		return nil, err
	}
	report := ParsePredictionReport(content)

	prediction := models.Prediction{
		UserID:              user.ID,
		UserSummary:         userSummary(user),
		PredictedDiseases:   report.PredictedDiseases,
		PositiveHabits:      report.PositiveHabits,
		AreasForImprovement: report.AreasForImprovement,
		Recommendations:     report.Recommendations,
	}
	if err := s.DB.Create(&prediction).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"diseases": len(report.PredictedDiseases),
	}).Info("prediction generated")

	return &prediction, nil
}

// PredictHandler generates or returns the caller's risk report.
// ?force=true regenerates.
func (s *PredictionService) PredictHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	prediction, err := s.Predict(c, &user, c.QueryBool("force", false))
	if err != nil {
		if errors.Is(err, ErrUpstream) {
			logrus.Errorf("prediction upstream failure for user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Prediction service unavailable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate prediction"})
	}
	return c.JSON(prediction)
}

// MostPredictedHandler returns the single most common predicted condition
// across all users.
func (s *PredictionService) MostPredictedHandler(c *fiber.Ctx) error {
	top, err := s.topConditions(1)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to aggregate predictions"})
	}
	if len(top) == 0 {
		return c.JSON(fiber.Map{"condition": "No predictions available"})
	}
	return c.JSON(top[0])
}

// TopPredictedHandler returns the five most common predicted conditions.
func (s *PredictionService) TopPredictedHandler(c *fiber.Ctx) error {
	top, err := s.topConditions(5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to aggregate predictions"})
	}
	return c.JSON(top)
}

type conditionCount struct {
	Condition string `json:"condition"`
	Count     int    `json:"count"`
}

// topConditions unpacks every stored report and counts conditions in Go;
// the disease list is serialized JSON, so SQL grouping is not available.
func (s *PredictionService) topConditions(limit int) ([]conditionCount, error) {
	var predictions []models.Prediction
	if err := s.DB.Find(&predictions).Error; err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, p := range predictions {
		for _, d := range p.PredictedDiseases {
			counts[d.Condition]++
		}
	}

	out := make([]conditionCount, 0, len(counts))
	for condition, count := range counts {
		out = append(out, conditionCount{Condition: condition, Count: count})
	}
	// selection by repeated max keeps this dependency-free for tiny n
	result := make([]conditionCount, 0, limit)
	for len(result) < limit && len(out) > 0 {
		best := 0
		for i := range out {
			if out[i].Count > out[best].Count {
				best = i
			}
		}
		result = append(result, out[best])
		out = append(out[:best], out[best+1:]...)
	}
	return result, nil
}
