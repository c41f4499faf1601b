package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"futureproof-backend/models"
)

// NextSleepValue advances the sleep vital by one step, clamped at 100.
func NextSleepValue(current, step int) int {
	next := current + step
	if next > 100 {
		return 100
	}
	if next < 0 {
		return 0
	}
	return next
}

// SleepTimerManager runs one cancellable ticker per sleeping user. Toggling
// sleep on starts a timer keyed by user id; toggling off cancels it
// explicitly instead of waiting for a poll loop to notice.
type SleepTimerManager struct {
	DB       *gorm.DB
	Interval time.Duration

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	base    context.Context
}

func NewSleepTimerManager(ctx context.Context, db *gorm.DB, interval time.Duration) *SleepTimerManager {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SleepTimerManager{
		DB:       db,
		Interval: interval,
		cancels:  make(map[string]context.CancelFunc),
		base:     ctx,
	}
}

// Start begins incrementing the user's sleep vital. Starting an already
// running timer is a no-op.
func (m *SleepTimerManager) Start(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, running := m.cancels[userID]; running {
		return
	}

	ctx, cancel := context.WithCancel(m.base)
	m.cancels[userID] = cancel

	go m.run(ctx, userID)
	logrus.WithField("user_id", userID).Info("sleep timer started")
}

// Stop cancels the user's timer. Returns false when none was running.
func (m *SleepTimerManager) Stop(userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	cancel, running := m.cancels[userID]
	if !running {
		return false
	}
	cancel()
	delete(m.cancels, userID)
	logrus.WithField("user_id", userID).Info("sleep timer stopped")
	return true
}

// Running reports whether a timer is active for the user.
func (m *SleepTimerManager) Running(userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, running := m.cancels[userID]
	return running
}

func (m *SleepTimerManager) run(ctx context.Context, userID string) {
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := m.DB.Model(&models.User{}).
				Where("id = ?", userID).
				Update("sleep", gorm.Expr("LEAST(sleep + 1, 100)")).Error
			if err != nil {
				logrus.Errorf("sleep increment failed for user %s: %v", userID, err)
			}
		}
	}
}
