package models

// Achievement is a catalog entry; Coins/XP are granted when a user earns it.
type Achievement struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Coins       int64  `gorm:"default:0" json:"coins"`
	XP          int64  `gorm:"default:0" json:"xp"`
	IconURL     string `gorm:"type:text" json:"icon_url"`

	Timestamps
}
