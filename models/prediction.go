package models

import "time"

// PredictedDisease is one condition/likelihood pair parsed out of the
// model's markdown response.
type PredictedDisease struct {
	Condition string `json:"condition"`
	Details   string `json:"details"`
}

// Prediction is the stored disease-risk report. At most one row per user
// unless force-regenerated.
type Prediction struct {
	ID     string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID string `gorm:"uniqueIndex;not null" json:"user_id"`

	UserSummary         string             `gorm:"type:text" json:"user_summary"`
	PredictedDiseases   []PredictedDisease `gorm:"serializer:json" json:"predicted_diseases"`
	PositiveHabits      []string           `gorm:"serializer:json" json:"positive_habits"`
	AreasForImprovement []string           `gorm:"serializer:json" json:"areas_for_improvement"`
	Recommendations     []string           `gorm:"serializer:json" json:"recommendations"`

	Timestamps
}

// UpdatedPrediction is a re-scored likelihood from the daily assessment.
type UpdatedPrediction struct {
	Condition     string  `json:"condition"`
	OldPercentage float64 `json:"old_percentage"`
	NewPercentage float64 `json:"new_percentage"`
	Reason        string  `json:"reason"`
}

// DailyAssessment re-scores the stored prediction against the day's task
// completions and nutrition log. One row per user per day, upserted.
type DailyAssessment struct {
	ID     string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID string    `gorm:"index;not null" json:"user_id"`
	Date   time.Time `gorm:"index;not null" json:"date"`

	TaskSummary        []TaskCompletion    `gorm:"serializer:json" json:"task_summary"`
	NutritionAnalysis  *NutritionLog       `gorm:"serializer:json" json:"nutrition_analysis"`
	UpdatedPredictions []UpdatedPrediction `gorm:"serializer:json" json:"updated_predictions"`
	Recommendations    []string            `gorm:"serializer:json" json:"recommendations"`

	Timestamps
}
