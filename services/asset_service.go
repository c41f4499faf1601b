// services/asset_service.go
package services

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"futureproof-backend/models"
	"futureproof-backend/utils"
)

type AssetService struct {
	DB *gorm.DB
}

func NewAssetService(db *gorm.DB) *AssetService {
	return &AssetService{DB: db}
}

// CreateAsset accepts a multipart form: name, description, category, price
// and an optional image file pushed to R2.
func (s *AssetService) CreateAsset(c *fiber.Ctx) error {
	name := c.FormValue("name")
	category := models.AssetCategory(c.FormValue("category"))
	if name == "" || category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and category are required"})
	}
	price, err := strconv.ParseInt(c.FormValue("price", "0"), 10, 64)
	if err != nil || price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid price"})
	}

	asset := models.Asset{
		Name:        name,
		Description: c.FormValue("description"),
		Category:    category,
		Price:       price,
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.UploadFileToR2(file, utils.MediaKey("assets", name, file.Filename))
		if err != nil {
			logrus.Errorf("asset image upload failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Image upload failed"})
		}
		asset.ImageURL = url
	}

	if err := s.DB.Create(&asset).Error; err != nil {
		logrus.Errorf("DB error creating asset: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create asset"})
	}
	return c.Status(fiber.StatusCreated).JSON(asset)
}

func (s *AssetService) ListAssets(c *fiber.Ctx) error {
	query := s.DB.Model(&models.Asset{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var assets []models.Asset
	if err := query.Order("created_at DESC").Find(&assets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch assets"})
	}
	return c.JSON(assets)
}

func (s *AssetService) GetAsset(c *fiber.Ctx) error {
	var asset models.Asset
	if err := s.DB.First(&asset, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(asset)
}

func (s *AssetService) UpdateAsset(c *fiber.Ctx) error {
	var asset models.Asset
	if err := s.DB.First(&asset, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	var req struct {
		Name        *string               `json:"name"`
		Description *string               `json:"description"`
		Category    *models.AssetCategory `json:"category"`
		Price       *int64                `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.Category != nil {
		asset.Category = *req.Category
	}
	if req.Price != nil {
		asset.Price = *req.Price
	}

	if err := s.DB.Save(&asset).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update asset"})
	}
	return c.JSON(asset)
}

func (s *AssetService) DeleteAsset(c *fiber.Ctx) error {
	var asset models.Asset
	if err := s.DB.First(&asset, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	if err := s.DB.Delete(&asset).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete asset"})
	}
	return c.JSON(fiber.Map{"message": "Asset deleted successfully"})
}

// --- Default assets (granted + equipped on registration) ---

func (s *AssetService) SetDefaultAsset(c *fiber.Ctx) error {
	var req struct {
		AssetID  string               `json:"asset_id"`
		Category models.AssetCategory `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AssetID == "" || req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "asset_id and category are required"})
	}

	// One default per slot: replace any existing entry for the category.
	var existing models.DefaultAsset
	err := s.DB.First(&existing, "category = ?", req.Category).Error
	switch {
	case err == nil:
		existing.AssetID = req.AssetID
		if err := s.DB.Save(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update default asset"})
		}
		return c.JSON(existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		def := models.DefaultAsset{AssetID: req.AssetID, Category: req.Category}
		if err := s.DB.Create(&def).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create default asset"})
		}
		return c.Status(fiber.StatusCreated).JSON(def)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
}

func (s *AssetService) ListDefaultAssets(c *fiber.Ctx) error {
	var defaults []models.DefaultAsset
	if err := s.DB.Find(&defaults).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch default assets"})
	}
	return c.JSON(defaults)
}
