package models

// DailyReward is a catalog entry for the daily login reward track.
// Claims reference the reward by id only, so later edits to a reward are
// not reflected in past claims.
type DailyReward struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Day      int    `gorm:"not null;index" json:"day"`
	Coins    int64  `gorm:"default:0" json:"coins"`
	XP       int64  `gorm:"default:0" json:"xp"`
	AvatarID string `json:"avatar_id,omitempty"`
	AssetID  string `json:"asset_id,omitempty"`

	Timestamps
}
