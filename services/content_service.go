// services/content_service.go
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"futureproof-backend/models"
)

// ContentService covers the small admin-managed catalogs: achievements and
// motivational quotes.
type ContentService struct {
	DB          *gorm.DB
	Progression *ProgressionService
}

func NewContentService(db *gorm.DB, progression *ProgressionService) *ContentService {
	return &ContentService{DB: db, Progression: progression}
}

// --- Achievements ---

func (s *ContentService) CreateAchievement(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Coins       int64  `json:"coins"`
		XP          int64  `json:"xp"`
		IconURL     string `json:"icon_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	achievement := models.Achievement{
		Title:       req.Title,
		Description: req.Description,
		Coins:       req.Coins,
		XP:          req.XP,
		IconURL:     req.IconURL,
	}
	if err := s.DB.Create(&achievement).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create achievement"})
	}
	return c.Status(fiber.StatusCreated).JSON(achievement)
}

func (s *ContentService) ListAchievements(c *fiber.Ctx) error {
	var achievements []models.Achievement
	if err := s.DB.Find(&achievements).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}
	return c.JSON(achievements)
}

// EarnAchievement grants the achievement's coins and XP to the caller
// through the shared progression engine.
func (s *ContentService) EarnAchievement(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var achievement models.Achievement
	if err := s.DB.First(&achievement, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Achievement not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	user, err := s.Progression.Grant(userID, achievement.Coins, achievement.XP)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to apply grant"})
	}

	return c.JSON(fiber.Map{
		"message": "Achievement earned",
		"coins":   user.Coins,
		"xp":      user.XP,
		"level":   user.Level,
	})
}

func (s *ContentService) DeleteAchievement(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Achievement{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete achievement"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Achievement not found"})
	}
	return c.JSON(fiber.Map{"message": "Achievement deleted successfully"})
}

// --- Quotes ---

func (s *ContentService) CreateQuote(c *fiber.Ctx) error {
	var req struct {
		Text   string `json:"text"`
		Author string `json:"author"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}

	quote := models.Quote{Text: req.Text, Author: req.Author}
	if err := s.DB.Create(&quote).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quote"})
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

func (s *ContentService) ListQuotes(c *fiber.Ctx) error {
	var quotes []models.Quote
	if err := s.DB.Find(&quotes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch quotes"})
	}
	return c.JSON(quotes)
}

// RandomQuote picks one quote for the home screen.
func (s *ContentService) RandomQuote(c *fiber.Ctx) error {
	var quote models.Quote
	if err := s.DB.Order("RANDOM()").First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No quotes available"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(quote)
}

func (s *ContentService) DeleteQuote(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Quote{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete quote"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
	}
	return c.JSON(fiber.Map{"message": "Quote deleted successfully"})
}
