package models

import (
	"time"

	"github.com/lib/pq"
)

// Role gates admin-only routes.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the central entity: identity, progression state, vitals,
// inventory references and lifecycle flags all hang off this row.
type User struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	Role           Role   `gorm:"not null;default:'user'" json:"role"`

	// Health profile, fed into the prediction prompt
	Age             int            `json:"age"`
	Gender          string         `json:"gender"`
	Height          float64        `json:"height"`
	Weight          float64        `json:"weight"`
	Environment     string         `json:"environment"`
	Vices           pq.StringArray `gorm:"type:text[]" json:"vices"`
	GeneticDiseases pq.StringArray `gorm:"type:text[]" json:"genetic_diseases"`
	Lifestyle       pq.StringArray `gorm:"type:text[]" json:"lifestyle"`
	FoodIntake      pq.StringArray `gorm:"type:text[]" json:"food_intake"`
	SleepHours      float64        `json:"sleep_hours"`
	Activeness      string         `json:"activeness"`

	// Progression. Invariant after every grant: 0 <= xp < 100*level.
	Coins int64 `gorm:"default:0" json:"coins"`
	XP    int64 `gorm:"default:0" json:"xp"`
	Level int   `gorm:"default:1" json:"level"`

	// Vitals, clamped to [0,100]
	Sleep      int `gorm:"default:100" json:"sleep"`
	Battery    int `gorm:"default:100" json:"battery"`
	Health     int `gorm:"default:100" json:"health"`
	Medication int `gorm:"default:100" json:"medication"`

	// Lifecycle
	Verified    bool       `gorm:"default:false" json:"verified"`
	Disabled    bool       `gorm:"default:false;index" json:"disabled"`
	DisabledAt  *time.Time `json:"disabled_at,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// Daily reward claim window. Claims themselves live in ClaimedRewards.
	NextClaimAt    *time.Time      `json:"next_claim_at,omitempty"`
	ClaimedRewards []ClaimedReward `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"claimed_rewards,omitempty"`

	Timestamps
}

// ClaimedReward is a membership record: "has this reward been claimed",
// not "when". One row per (user, reward).
type ClaimedReward struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_user_reward;not null" json:"user_id"`
	RewardID  string    `gorm:"uniqueIndex:idx_user_reward;not null" json:"reward_id"`
	ClaimedAt time.Time `gorm:"autoCreateTime" json:"claimed_at"`
}

// ClaimedRewardIDs flattens the membership rows for eligibility checks.
func (u *User) ClaimedRewardIDs() []string {
	ids := make([]string, 0, len(u.ClaimedRewards))
	for _, cr := range u.ClaimedRewards {
		ids = append(ids, cr.RewardID)
	}
	return ids
}
