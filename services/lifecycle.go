// services/lifecycle.go
package services

import (
	"errors"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"futureproof-backend/models"
	"futureproof-backend/utils"
)

const (
	// InactivityThreshold is how long since last login before an account
	// is disabled by the sweep.
	InactivityThreshold = 30 * 24 * time.Hour
	// ReapDelay is how long a disabled account survives before deletion.
	ReapDelay = 24 * time.Hour
)

type LifecycleService struct {
	DB     *gorm.DB
	Mailer *utils.Mailer
}

func NewLifecycleService(db *gorm.DB, mailer *utils.Mailer) *LifecycleService {
	return &LifecycleService{DB: db, Mailer: mailer}
}

// Disable soft-disables an account and notifies the user.
func (s *LifecycleService) Disable(userID string) error {
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Disabled {
		return nil
	}

	now := time.Now().UTC()
	user.Disabled = true
	user.DisabledAt = &now
	if err := s.DB.Save(&user).Error; err != nil {
		return err
	}

	s.Mailer.SendAsync(func() error { return s.Mailer.SendDisabledNotice(user.Email) }, user.Email, "disabled")
	logrus.WithField("user_id", userID).Info("account disabled")
	return nil
}

// Enable clears the disabled flag (admin override, no OTP required).
func (s *LifecycleService) Enable(userID string) error {
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.Disabled = false
	user.DisabledAt = nil
	if err := s.DB.Save(&user).Error; err != nil {
		return err
	}
	logrus.WithField("user_id", userID).Info("account enabled")
	return nil
}

// SweepInactive disables every account whose last login predates the
// inactivity threshold. Accounts that never logged in are aged from
// registration instead.
func (s *LifecycleService) SweepInactive(now time.Time) (int, error) {
	cutoff := now.UTC().Add(-InactivityThreshold)

	var stale []models.User
	err := s.DB.
		Where("disabled = ?", false).
		Where("(last_login_at IS NOT NULL AND last_login_at < ?) OR (last_login_at IS NULL AND created_at < ?)", cutoff, cutoff).
		Find(&stale).Error
	if err != nil {
		return 0, err
	}

	for i := range stale {
		u := &stale[i]
		ts := now.UTC()
		u.Disabled = true
		u.DisabledAt = &ts
		if err := s.DB.Save(u).Error; err != nil {
			logrus.Errorf("sweep: failed to disable user %s: %v", u.ID, err)
			continue
		}
		s.Mailer.SendAsync(func() error { return s.Mailer.SendDisabledNotice(u.Email) }, u.Email, "disabled")
	}

	if len(stale) > 0 {
		logrus.WithField("count", len(stale)).Info("inactivity sweep disabled accounts")
	}
	return len(stale), nil
}

// ReapDisabled hard-deletes accounts disabled for longer than the reap
// delay. Re-running deletes nothing new, so the job is idempotent.
func (s *LifecycleService) ReapDisabled(now time.Time) (int, error) {
	cutoff := now.UTC().Add(-ReapDelay)

	res := s.DB.Unscoped().
		Where("disabled = ? AND disabled_at < ?", true, cutoff).
		Delete(&models.User{})
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected > 0 {
		logrus.WithField("count", res.RowsAffected).Warn("reaped disabled accounts")
	}
	return int(res.RowsAffected), nil
}

// StartLifecycleScheduler runs the sweep and the reaper on fixed intervals.
func (s *LifecycleService) StartLifecycleScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			if _, err := s.SweepInactive(time.Now()); err != nil {
				logrus.Errorf("[Scheduler] inactivity sweep failed: %v", err)
			}
			if _, err := s.ReapDisabled(time.Now()); err != nil {
				logrus.Errorf("[Scheduler] reap failed: %v", err)
			}
		}),
	)
}

// --- Admin handlers ---

func (s *LifecycleService) DisableHandler(c *fiber.Ctx) error {
	if err := s.Disable(c.Params("id")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to disable user"})
	}
	return c.JSON(fiber.Map{"message": "User disabled"})
}

func (s *LifecycleService) EnableHandler(c *fiber.Ctx) error {
	if err := s.Enable(c.Params("id")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enable user"})
	}
	return c.JSON(fiber.Map{"message": "User enabled"})
}

func (s *LifecycleService) ListUsersHandler(c *fiber.Ctx) error {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	return c.JSON(users)
}
