// services/avatar_service.go
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

type AvatarService struct {
	DB *gorm.DB
}

func NewAvatarService(db *gorm.DB) *AvatarService {
	return &AvatarService{DB: db}
}

func (s *AvatarService) CreateAvatar(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	price, err := strconv.ParseInt(c.FormValue("price", "0"), 10, 64)
	if err != nil || price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid price"})
	}

	avatar := models.Avatar{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.UploadFileToR2(file, utils.MediaKey("avatars", name, file.Filename))
		if err != nil {
			logrus.Errorf("avatar image upload failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Image upload failed"})
		}
		avatar.ImageURL = url
	}

	if err := s.DB.Create(&avatar).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create avatar"})
	}
	return c.Status(fiber.StatusCreated).JSON(avatar)
}

func (s *AvatarService) ListAvatars(c *fiber.Ctx) error {
	var avatars []models.Avatar
	if err := s.DB.Order("created_at DESC").Find(&avatars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch avatars"})
	}
	return c.JSON(avatars)
}

func (s *AvatarService) GetAvatar(c *fiber.Ctx) error {
	var avatar models.Avatar
	if err := s.DB.First(&avatar, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Avatar not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(avatar)
}

func (s *AvatarService) DeleteAvatar(c *fiber.Ctx) error {
	var avatar models.Avatar
	if err := s.DB.First(&avatar, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Avatar not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	if err := s.DB.Delete(&avatar).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete avatar"})
	}
	return c.JSON(fiber.Map{"message": "Avatar deleted successfully"})
}
