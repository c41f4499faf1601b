// services/daily_reward_service.go
package services

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"futureproof-backend/models"
)

// ClaimWindow is how long a user must wait between daily claims.
const ClaimWindow = 24 * time.Hour

// displayLocation is for presentation only; storage is always UTC.
var displayLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		return time.UTC
	}
	return loc
}()

type DailyRewardService struct {
	DB *gorm.DB
}

func NewDailyRewardService(db *gorm.DB) *DailyRewardService {
	return &DailyRewardService{DB: db}
}

// CheckClaimEligibility enforces the claim rules in order: a reward id
// already in the claimed set wins over the cooldown window. Claiming at
// exactly the stored next-claim time succeeds.
func CheckClaimEligibility(claimedIDs []string, nextClaimAt *time.Time, rewardID string, now time.Time) error {
	for _, id := range claimedIDs {
		if id == rewardID {
			return ErrAlreadyClaimed
		}
	}
	if nextClaimAt != nil && now.Before(*nextClaimAt) {
		return ErrClaimTooSoon
	}
	return nil
}

// Claim applies a daily reward to a user: coin/XP grant through the shared
// level-up routine, optional avatar/asset grants, claim membership, and the
// next 24h window — all in one transaction.
func (s *DailyRewardService) Claim(userID, rewardID string, now time.Time) (*models.User, *models.DailyReward, error) {
	now = now.UTC()
	var user models.User
	var reward models.DailyReward

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("ClaimedRewards").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := CheckClaimEligibility(user.ClaimedRewardIDs(), user.NextClaimAt, rewardID, now); err != nil {
			return err
		}

		if err := tx.First(&reward, "id = ?", rewardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRewardNotFound
			}
			return err
		}

		ApplyGrant(&user, reward.Coins, reward.XP)

		if reward.AvatarID != "" {
			owned := models.OwnedAvatar{UserID: user.ID, AvatarID: reward.AvatarID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&owned).Error; err != nil {
				return err
			}
		}
		if reward.AssetID != "" {
			owned := models.OwnedAsset{UserID: user.ID, AssetID: reward.AssetID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&owned).Error; err != nil {
				return err
			}
		}

		claim := models.ClaimedReward{UserID: user.ID, RewardID: reward.ID, ClaimedAt: now}
		if err := tx.Create(&claim).Error; err != nil {
			return err
		}

		next := now.Add(ClaimWindow)
		user.NextClaimAt = &next

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"reward_id": rewardID,
		"coins":     reward.Coins,
		"xp":        reward.XP,
	}).Info("daily reward claimed")

	return &user, &reward, nil
}

// ClaimHandler claims a daily reward for the authenticated user.
func (s *DailyRewardService) ClaimHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	rewardID := c.Params("id")

	now := time.Now().UTC()
	user, reward, err := s.Claim(userID, rewardID, now)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, ErrAlreadyClaimed):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Reward already claimed"})
		case errors.Is(err, ErrClaimTooSoon):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Next claim window not yet open"})
		case errors.Is(err, ErrRewardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reward not found"})
		}
		logrus.Errorf("claim failed for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to claim reward"})
	}

	return c.JSON(fiber.Map{
		"message":          "Reward claimed successfully",
		"reward":           reward,
		"coins":            user.Coins,
		"xp":               user.XP,
		"level":            user.Level,
		"next_claim_at":    user.NextClaimAt,
		"claimed_at_local": now.In(displayLocation).Format(time.RFC3339),
	})
}

// --- Admin catalog CRUD ---

func (s *DailyRewardService) CreateReward(c *fiber.Ctx) error {
	var req struct {
		Day      int    `json:"day"`
		Coins    int64  `json:"coins"`
		XP       int64  `json:"xp"`
		AvatarID string `json:"avatar_id"`
		AssetID  string `json:"asset_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Day < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "day must be positive"})
	}

	reward := models.DailyReward{
		Day:      req.Day,
		Coins:    req.Coins,
		XP:       req.XP,
		AvatarID: req.AvatarID,
		AssetID:  req.AssetID,
	}
	if err := s.DB.Create(&reward).Error; err != nil {
		logrus.Errorf("DB error creating daily reward: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create reward"})
	}
	return c.Status(fiber.StatusCreated).JSON(reward)
}

func (s *DailyRewardService) ListRewards(c *fiber.Ctx) error {
	var rewards []models.DailyReward
	if err := s.DB.Order("day ASC").Find(&rewards).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch rewards"})
	}
	return c.JSON(rewards)
}

func (s *DailyRewardService) UpdateReward(c *fiber.Ctx) error {
	id := c.Params("id")

	var reward models.DailyReward
	if err := s.DB.First(&reward, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reward not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	var req struct {
		Day      *int    `json:"day"`
		Coins    *int64  `json:"coins"`
		XP       *int64  `json:"xp"`
		AvatarID *string `json:"avatar_id"`
		AssetID  *string `json:"asset_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Day != nil {
		reward.Day = *req.Day
	}
	if req.Coins != nil {
		reward.Coins = *req.Coins
	}
	if req.XP != nil {
		reward.XP = *req.XP
	}
	if req.AvatarID != nil {
		reward.AvatarID = *req.AvatarID
	}
	if req.AssetID != nil {
		reward.AssetID = *req.AssetID
	}

	if err := s.DB.Save(&reward).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update reward"})
	}
	return c.JSON(reward)
}

func (s *DailyRewardService) DeleteReward(c *fiber.Ctx) error {
	id := c.Params("id")

	var reward models.DailyReward
	if err := s.DB.First(&reward, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reward not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	if err := s.DB.Delete(&reward).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete reward"})
	}
	return c.JSON(fiber.Map{"message": "Reward deleted successfully"})
}
