// services/inventory_service.go
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"futureproof-backend/models"
)

type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

// AddOwned records ownership with set semantics — re-adding is a no-op.
func (s *InventoryService) AddOwned(userID, assetID string) error {
	owned := models.OwnedAsset{UserID: userID, AssetID: assetID}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&owned).Error
}

// Equip upserts the asset into the slot: whatever was equipped there before
// is replaced, and equipping the same asset twice is idempotent.
func (s *InventoryService) Equip(userID string, slot models.AssetCategory, assetID, color string) error {
	equipped := models.EquippedAsset{UserID: userID, Slot: slot, AssetID: assetID, Color: color}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"asset_id", "color", "updated_at"}),
	}).Create(&equipped).Error
}

// Unequip empties the slot; ErrNothingEquipped when it was already empty.
func (s *InventoryService) Unequip(userID string, slot models.AssetCategory) error {
	res := s.DB.Where("user_id = ? AND slot = ?", userID, slot).Delete(&models.EquippedAsset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNothingEquipped
	}
	return nil
}

// CheckPurchase verifies the buyer can cover the price. Called before any
// write, so a failed purchase leaves the user untouched.
func CheckPurchase(balance, price int64) error {
	if balance < price {
		return ErrInsufficientCoins
	}
	return nil
}

// Purchase debits the asset price and grants ownership in one transaction,
// so an interrupted purchase can never take coins without the asset.
func (s *InventoryService) Purchase(userID, assetID string) (*models.PurchasedItem, error) {
	var item models.PurchasedItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var asset models.Asset
		if err := tx.First(&asset, "id = ?", assetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return err
		}

		if err := CheckPurchase(user.Coins, asset.Price); err != nil {
			return err
		}

		ApplyGrant(&user, -asset.Price, 0)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		owned := models.OwnedAsset{UserID: user.ID, AssetID: asset.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&owned).Error; err != nil {
			return err
		}

		item = models.PurchasedItem{UserID: user.ID, AssetID: asset.ID, Price: asset.Price}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"asset_id": assetID,
		"price":    item.Price,
	}).Info("asset purchased")

	return &item, nil
}

// --- Handlers ---

func (s *InventoryService) EquipHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		Slot    models.AssetCategory `json:"slot"`
		AssetID string               `json:"asset_id"`
		Color   string               `json:"color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Slot == "" || req.AssetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slot and asset_id are required"})
	}

	if err := s.Equip(userID, req.Slot, req.AssetID, req.Color); err != nil {
		logrus.Errorf("equip failed for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to equip asset"})
	}
	return c.JSON(fiber.Map{"message": "Asset equipped", "slot": req.Slot, "asset_id": req.AssetID})
}

func (s *InventoryService) UnequipHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	slot := models.AssetCategory(c.Params("slot"))

	if err := s.Unequip(userID, slot); err != nil {
		if errors.Is(err, ErrNothingEquipped) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nothing equipped in that slot"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unequip"})
	}
	return c.JSON(fiber.Map{"message": "Slot cleared", "slot": slot})
}

func (s *InventoryService) ListEquippedHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var equipped []models.EquippedAsset
	if err := s.DB.Where("user_id = ?", userID).Find(&equipped).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch equipped assets"})
	}

	// slot -> asset map keeps the mobile client's lookup cheap
	bySlot := make(map[models.AssetCategory]models.EquippedAsset, len(equipped))
	for _, e := range equipped {
		bySlot[e.Slot] = e
	}
	return c.JSON(bySlot)
}

func (s *InventoryService) ListOwnedHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var assets []models.OwnedAsset
	if err := s.DB.Where("user_id = ?", userID).Find(&assets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch owned assets"})
	}
	var avatars []models.OwnedAvatar
	if err := s.DB.Where("user_id = ?", userID).Find(&avatars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch owned avatars"})
	}
	return c.JSON(fiber.Map{"assets": assets, "avatars": avatars})
}

func (s *InventoryService) PurchaseHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		AssetID string `json:"asset_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	item, err := s.Purchase(userID, req.AssetID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, ErrAssetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		case errors.Is(err, ErrInsufficientCoins):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient coins"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Purchase failed"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (s *InventoryService) ListPurchasesHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var items []models.PurchasedItem
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch purchases"})
	}
	return c.JSON(items)
}

// AddOwnedHandler grants an asset without payment (admin tooling).
func (s *InventoryService) AddOwnedHandler(c *fiber.Ctx) error {
	var req struct {
		UserID  string `json:"user_id"`
		AssetID string `json:"asset_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UserID == "" || req.AssetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id and asset_id are required"})
	}
	if err := s.AddOwned(req.UserID, req.AssetID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to grant asset"})
	}
	return c.JSON(fiber.Map{"message": "Asset granted"})
}
