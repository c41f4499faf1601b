package models

import "time"

// OwnedAsset records asset ownership with set semantics — re-adding an
// already owned asset is a no-op, enforced by the composite unique index.
type OwnedAsset struct {
	ID      string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID  string `gorm:"uniqueIndex:idx_user_asset;not null" json:"user_id"`
	AssetID string `gorm:"uniqueIndex:idx_user_asset;not null" json:"asset_id"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// OwnedAvatar mirrors OwnedAsset for avatar grants.
type OwnedAvatar struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID   string `gorm:"uniqueIndex:idx_user_avatar;not null" json:"user_id"`
	AvatarID string `gorm:"uniqueIndex:idx_user_avatar;not null" json:"avatar_id"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// EquippedAsset holds at most one asset per (user, slot). Equip is an
// upsert on the composite key; unequip deletes the row.
type EquippedAsset struct {
	ID      string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID  string        `gorm:"uniqueIndex:idx_user_slot;not null" json:"user_id"`
	Slot    AssetCategory `gorm:"uniqueIndex:idx_user_slot;not null" json:"slot"`
	AssetID string        `gorm:"not null" json:"asset_id"`
	Color   string        `json:"color,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
