package models

// Quote is a motivational quote shown on the home screen.
type Quote struct {
	ID     string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Author string `json:"author"`

	Timestamps
}
