package models

import (
	"time"

	"github.com/lib/pq"
)

// TaskCompletion logs a finished wellness task; today's completions feed
// the daily assessment.
type TaskCompletion struct {
	ID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID        string    `gorm:"index;not null" json:"user_id"`
	TaskName      string    `gorm:"not null" json:"task_name"`
	Category      string    `json:"category"`
	DateCompleted time.Time `gorm:"index;not null" json:"date_completed"`

	Timestamps
}

// NutritionLog is one day's nutrition questionnaire for a user.
type NutritionLog struct {
	ID          string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID      string         `gorm:"index;not null" json:"user_id"`
	Meals       pq.StringArray `gorm:"type:text[]" json:"meals"`
	WaterCups   int            `json:"water_cups"`
	Notes       string         `gorm:"type:text" json:"notes"`
	DateTracked time.Time      `gorm:"index;not null" json:"date_tracked"`

	Timestamps
}
