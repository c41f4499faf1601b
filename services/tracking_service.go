// services/tracking_service.go
package services

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"futureproof-backend/models"
)

// TrackingService stores the daily wellness logs the assessment reads.
type TrackingService struct {
	DB *gorm.DB
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{DB: db}
}

// startOfDay truncates to midnight UTC; "today" comparisons are in UTC.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// classifyLookup splits a First result three ways: the row exists, the row
// is missing, or the query itself failed. A failed query must never be
// treated as "missing", or the one-log-per-day rule breaks.
func classifyLookup(err error) (found bool, lookupErr error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

// --- Task completions ---

func (s *TrackingService) CompleteTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		TaskName string `json:"task_name"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.TaskName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "task_name is required"})
	}

	completion := models.TaskCompletion{
		UserID:        userID,
		TaskName:      req.TaskName,
		Category:      req.Category,
		DateCompleted: time.Now().UTC(),
	}
	if err := s.DB.Create(&completion).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record completion"})
	}
	return c.Status(fiber.StatusCreated).JSON(completion)
}

func (s *TrackingService) ListTodayTasks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	tasks, err := s.TasksCompletedToday(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch completions"})
	}
	return c.JSON(tasks)
}

func (s *TrackingService) TasksCompletedToday(userID string, now time.Time) ([]models.TaskCompletion, error) {
	var tasks []models.TaskCompletion
	err := s.DB.
		Where("user_id = ? AND date_completed >= ?", userID, startOfDay(now)).
		Order("date_completed DESC").
		Find(&tasks).Error
	return tasks, err
}

// --- Nutrition logs ---

func (s *TrackingService) LogNutrition(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		Meals     []string `json:"meals"`
		WaterCups int      `json:"water_cups"`
		Notes     string   `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// One log per day: later submissions replace today's entry.
	now := time.Now().UTC()
	var existing models.NutritionLog
	found, err := classifyLookup(s.DB.
		Where("user_id = ? AND date_tracked >= ?", userID, startOfDay(now)).
		First(&existing).Error)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	if found {
		existing.Meals = req.Meals
		existing.WaterCups = req.WaterCups
		existing.Notes = req.Notes
		if err := s.DB.Save(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update log"})
		}
		return c.JSON(existing)
	}

	log := models.NutritionLog{
		UserID:      userID,
		Meals:       req.Meals,
		WaterCups:   req.WaterCups,
		Notes:       req.Notes,
		DateTracked: now,
	}
	if err := s.DB.Create(&log).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store log"})
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

func (s *TrackingService) TodayNutrition(userID string, now time.Time) (*models.NutritionLog, error) {
	var log models.NutritionLog
	err := s.DB.
		Where("user_id = ? AND date_tracked >= ?", userID, startOfDay(now)).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *TrackingService) ListNutrition(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var logs []models.NutritionLog
	if err := s.DB.Where("user_id = ?", userID).Order("date_tracked DESC").Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch logs"})
	}
	return c.JSON(logs)
}
