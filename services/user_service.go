// services/user_service.go
package services

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"futureproof-backend/models"
	"futureproof-backend/utils"
)

type UserService struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Mailer    *utils.Mailer
	JWTSecret string
	TokenTTL  time.Duration
}

func NewUserService(db *gorm.DB, rdb *redis.Client, mailer *utils.Mailer, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		DB:        db,
		Redis:     rdb,
		Mailer:    mailer,
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}
}

// ClampVital keeps a vital inside [0,100].
func ClampVital(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// sendOTP generates, stores and dispatches a fresh code for the email.
// Mail delivery is fire-and-forget; the HTTP response never waits on SMTP.
func (s *UserService) sendOTP(c *fiber.Ctx, email string) error {
	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	if err := utils.StoreOTP(c.Context(), s.Redis, email, otp); err != nil {
		return err
	}
	s.Mailer.SendAsync(func() error { return s.Mailer.SendOTPEmail(email, otp) }, email, "otp")
	return nil
}

// RegisterHandler creates an unverified account and dispatches the OTP.
func (s *UserService) RegisterHandler(c *fiber.Ctx) error {
	var req struct {
		Username        string   `json:"username"`
		Email           string   `json:"email"`
		Password        string   `json:"password"`
		Age             int      `json:"age"`
		Gender          string   `json:"gender"`
		Height          float64  `json:"height"`
		Weight          float64  `json:"weight"`
		Environment     string   `json:"environment"`
		Vices           []string `json:"vices"`
		GeneticDiseases []string `json:"genetic_diseases"`
		Lifestyle       []string `json:"lifestyle"`
		FoodIntake      []string `json:"food_intake"`
		SleepHours      float64  `json:"sleep_hours"`
		Activeness      string   `json:"activeness"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username, email and password are required"})
	}

	var existing models.User
	if err := s.DB.First(&existing, "username = ?", req.Username).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		Username:        req.Username,
		Email:           req.Email,
		HashedPassword:  string(hash),
		Role:            models.RoleUser,
		Age:             req.Age,
		Gender:          req.Gender,
		Height:          req.Height,
		Weight:          req.Weight,
		Environment:     req.Environment,
		Vices:           req.Vices,
		GeneticDiseases: req.GeneticDiseases,
		Lifestyle:       req.Lifestyle,
		FoodIntake:      req.FoodIntake,
		SleepHours:      req.SleepHours,
		Activeness:      req.Activeness,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		// New accounts start with the default cosmetics equipped.
		var defaults []models.DefaultAsset
		if err := tx.Find(&defaults).Error; err != nil {
			return err
		}
		for _, d := range defaults {
			owned := models.OwnedAsset{UserID: user.ID, AssetID: d.AssetID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&owned).Error; err != nil {
				return err
			}
			equipped := models.EquippedAsset{UserID: user.ID, Slot: d.Category, AssetID: d.AssetID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&equipped).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.Errorf("registration failed for %s: %v", req.Username, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to register user"})
	}

	if err := s.sendOTP(c, user.Email); err != nil {
		// Account exists; the user can request a fresh code via login.
		logrus.Warnf("OTP dispatch failed for %s: %v", user.Email, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

// ApplyVerification marks the account verified; a disabled account is
// reactivated in the same step. Reports whether a reactivation happened.
// Only called after the OTP check passed, so a wrong code never reaches it.
func ApplyVerification(user *models.User) (reactivated bool) {
	user.Verified = true
	if user.Disabled {
		user.Disabled = false
		user.DisabledAt = nil
		return true
	}
	return false
}

// VerifyOTPHandler marks the account verified and, for a disabled account,
// reactivates it. The code is single-use.
func (s *UserService) VerifyOTPHandler(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ok, err := utils.VerifyOTP(c.Context(), s.Redis, req.Email, req.OTP)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "OTP check failed"})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or expired OTP"})
	}

	var user models.User
	if err := s.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	if ApplyVerification(&user) {
		logrus.WithField("user_id", user.ID).Info("account reactivated via OTP")
	}
	if err := s.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"message": "Account verified"})
}

// LoginHandler authenticates and issues the bearer token. A disabled
// account gets a fresh reactivation OTP instead of a token.
func (s *UserService) LoginHandler(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var user models.User
	if err := s.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if user.Disabled {
		if err := s.sendOTP(c, user.Email); err != nil {
			logrus.Warnf("reactivation OTP dispatch failed for %s: %v", user.Email, err)
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Account is disabled. A reactivation code has been sent to your email.",
		})
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update login time"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// ProfileHandler returns the authenticated user's full record.
func (s *UserService) ProfileHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var user models.User
	if err := s.DB.Preload("ClaimedRewards").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(user)
}

// UpdateVitalsHandler updates the gameplay vitals, clamped to [0,100].
func (s *UserService) UpdateVitalsHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		Sleep      *int `json:"sleep"`
		Battery    *int `json:"battery"`
		Health     *int `json:"health"`
		Medication *int `json:"medication"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	if req.Sleep != nil {
		user.Sleep = ClampVital(*req.Sleep)
	}
	if req.Battery != nil {
		user.Battery = ClampVital(*req.Battery)
	}
	if req.Health != nil {
		user.Health = ClampVital(*req.Health)
	}
	if req.Medication != nil {
		user.Medication = ClampVital(*req.Medication)
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vitals"})
	}
	return c.JSON(fiber.Map{
		"sleep":      user.Sleep,
		"battery":    user.Battery,
		"health":     user.Health,
		"medication": user.Medication,
	})
}

// UpdateProfileHandler updates the health profile fed into predictions.
func (s *UserService) UpdateProfileHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		Age             *int     `json:"age"`
		Gender          *string  `json:"gender"`
		Height          *float64 `json:"height"`
		Weight          *float64 `json:"weight"`
		Environment     *string  `json:"environment"`
		Vices           []string `json:"vices"`
		GeneticDiseases []string `json:"genetic_diseases"`
		Lifestyle       []string `json:"lifestyle"`
		FoodIntake      []string `json:"food_intake"`
		SleepHours      *float64 `json:"sleep_hours"`
		Activeness      *string  `json:"activeness"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Height != nil {
		user.Height = *req.Height
	}
	if req.Weight != nil {
		user.Weight = *req.Weight
	}
	if req.Environment != nil {
		user.Environment = *req.Environment
	}
	if req.Vices != nil {
		user.Vices = req.Vices
	}
	if req.GeneticDiseases != nil {
		user.GeneticDiseases = req.GeneticDiseases
	}
	if req.Lifestyle != nil {
		user.Lifestyle = req.Lifestyle
	}
	if req.FoodIntake != nil {
		user.FoodIntake = req.FoodIntake
	}
	if req.SleepHours != nil {
		user.SleepHours = *req.SleepHours
	}
	if req.Activeness != nil {
		user.Activeness = *req.Activeness
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(user)
}
