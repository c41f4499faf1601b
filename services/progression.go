package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"futureproof-backend/models"
)

// XPThreshold is the XP needed to clear one level at the given level; the
// requirement grows linearly, so higher levels need proportionally more XP.
func XPThreshold(level int) int64 {
	if level < 1 {
		level = 1
	}
	return int64(100 * level)
}

// ApplyGrant mutates the user's coins, XP and level in place. XP rolls over:
// every time the accumulated XP clears the current level's threshold, the
// threshold is subtracted and the level increments, recomputing the
// threshold each iteration. Post-condition: xp < 100*level, and level never
// decreases. Negative deltas are allowed (purchases) — callers must verify
// funds before deducting.
func ApplyGrant(user *models.User, coins, xp int64) {
	user.Coins += coins
	user.XP += xp
	for user.XP >= XPThreshold(user.Level) {
		user.XP -= XPThreshold(user.Level)
		user.Level++
	}
}

type ProgressionService struct {
	DB *gorm.DB
}

func NewProgressionService(db *gorm.DB) *ProgressionService {
	return &ProgressionService{DB: db}
}

// Grant applies a coin/XP delta to a user inside one transaction and
// returns the updated row.
func (s *ProgressionService) Grant(userID string, coins, xp int64) (*models.User, error) {
	var updated *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		ApplyGrant(&user, coins, xp)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		updated = &user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"coins":   coins,
		"xp":      xp,
		"level":   updated.Level,
	}).Info("progression grant applied")

	return updated, nil
}

// GrantHandler applies a coin/XP delta to the authenticated user.
func (s *ProgressionService) GrantHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		Coins int64 `json:"coins"`
		XP    int64 `json:"xp"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := s.Grant(userID, req.Coins, req.XP)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to apply grant"})
	}

	return c.JSON(fiber.Map{
		"coins": user.Coins,
		"xp":    user.XP,
		"level": user.Level,
	})
}

// AdminGrantHandler applies a grant to an arbitrary user (admin only).
func (s *ProgressionService) AdminGrantHandler(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"user_id"`
		Coins  int64  `json:"coins"`
		XP     int64  `json:"xp"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	user, err := s.Grant(req.UserID, req.Coins, req.XP)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to apply grant"})
	}

	return c.JSON(fiber.Map{
		"message": "Grant applied successfully",
		"user_id": user.ID,
		"coins":   user.Coins,
		"xp":      user.XP,
		"level":   user.Level,
	})
}
