package models

// Avatar is a collectible character skin, granted by rewards or purchased.
type Avatar struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       int64  `gorm:"default:0" json:"price"`
	ImageURL    string `gorm:"type:text" json:"image_url"`

	Timestamps
}
