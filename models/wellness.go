package models

import "github.com/lib/pq"

// PhysicalActivity is a guided exercise entry in the content library.
type PhysicalActivity struct {
	ID              string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	Description     string `gorm:"type:text" json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       string `json:"intensity"`
	Coins           int64  `gorm:"default:0" json:"coins"`
	XP              int64  `gorm:"default:0" json:"xp"`
	ImageURL        string `gorm:"type:text" json:"image_url"`

	Timestamps
}

// MeditationContent is a meditation or breathing exercise with hosted video.
type MeditationContent struct {
	ID              string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title           string `gorm:"not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	Kind            string `gorm:"not null;index" json:"kind"` // meditation | breathing
	DurationMinutes int    `json:"duration_minutes"`
	VideoURL        string `gorm:"type:text" json:"video_url"`

	Timestamps
}

// QuizQuestion is a health-quiz item with one correct choice.
type QuizQuestion struct {
	ID       string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Question string         `gorm:"type:text;not null" json:"question"`
	Choices  pq.StringArray `gorm:"type:text[]" json:"choices"`
	Answer   string         `gorm:"not null" json:"answer"`

	Timestamps
}

// QuizResult stores a submitted quiz attempt and its score.
type QuizResult struct {
	ID      string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID  string         `gorm:"index;not null" json:"user_id"`
	Answers pq.StringArray `gorm:"type:text[]" json:"answers"`
	Score   int            `json:"score"`

	Timestamps
}
