package models

// AssetCategory is the equip slot an asset occupies (one asset per slot).
type AssetCategory string

const (
	AssetCategoryHat        AssetCategory = "hat"
	AssetCategoryOutfit     AssetCategory = "outfit"
	AssetCategoryAccessory  AssetCategory = "accessory"
	AssetCategoryBackground AssetCategory = "background"
)

// Asset is a purchasable cosmetic.
type Asset struct {
	ID          string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string        `gorm:"not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Category    AssetCategory `gorm:"not null;index" json:"category"`
	Price       int64         `gorm:"not null;default:0" json:"price"`
	ImageURL    string        `gorm:"type:text" json:"image_url"`

	Timestamps
}

// DefaultAsset is granted to every new account for a given slot.
type DefaultAsset struct {
	ID       string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	AssetID  string        `gorm:"not null" json:"asset_id"`
	Category AssetCategory `gorm:"uniqueIndex;not null" json:"category"`

	Timestamps
}

// PurchasedItem is the receipt row written by the purchase flow.
type PurchasedItem struct {
	ID      string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID  string `gorm:"index;not null" json:"user_id"`
	AssetID string `gorm:"not null" json:"asset_id"`
	Price   int64  `json:"price"`

	Timestamps
}
