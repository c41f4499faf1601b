package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"futureproof-backend/handlers"
	"futureproof-backend/middleware"
	"futureproof-backend/models"
	"futureproof-backend/services"
	"futureproof-backend/utils"
	"futureproof-backend/workers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading environment variables directly")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable not set")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logrus.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatal("failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ClaimedReward{},
		&models.DailyReward{},
		&models.Asset{},
		&models.DefaultAsset{},
		&models.Avatar{},
		&models.Achievement{},
		&models.Quote{},
		&models.OwnedAsset{},
		&models.OwnedAvatar{},
		&models.EquippedAsset{},
		&models.PurchasedItem{},
		&models.PhysicalActivity{},
		&models.MeditationContent{},
		&models.QuizQuestion{},
		&models.QuizResult{},
		&models.TaskCompletion{},
		&models.NutritionLog{},
		&models.Prediction{},
		&models.DailyAssessment{},
	); err != nil {
		logrus.Fatal("failed to migrate database: ", err)
	}

	if err := utils.InitR2(); err != nil {
		logrus.Fatal("failed to initialize R2 client: ", err)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	mailer := utils.NewMailerFromEnv()
	groq := services.NewGroqClientFromEnv()

	userService := services.NewUserService(db, rdb, mailer, jwtSecret, 72*time.Hour)
	progressionService := services.NewProgressionService(db)
	lifecycleService := services.NewLifecycleService(db, mailer)
	rewardService := services.NewDailyRewardService(db)
	inventoryService := services.NewInventoryService(db)
	assetService := services.NewAssetService(db)
	avatarService := services.NewAvatarService(db)
	contentService := services.NewContentService(db, progressionService)
	wellnessService := services.NewWellnessService(db)
	trackingService := services.NewTrackingService(db)
	predictionService := services.NewPredictionService(db, groq)
	assessmentService := services.NewAssessmentService(db, groq, trackingService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sleepTimers := workers.NewSleepTimerManager(ctx, db, time.Minute)
	lifecycleService.StartLifecycleScheduler()

	app := fiber.New(fiber.Config{
		BodyLimit: 512 * 1024 * 1024,
	})

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		logrus.Warn("ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOrigins = "http://localhost:3000"
	}
	origins := strings.Split(allowedOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Token parsing happens once per request: each resource group carries the
	// auth handler, and all admin routes share one guarded group.
	jwtAuth := middleware.JWTAuthMiddleware(jwtSecret)
	admin := app.Group("/admin", jwtAuth, middleware.AdminOnly())

	handlers.SetupUserRoutes(app, admin, jwtAuth, userService, progressionService, lifecycleService, sleepTimers)
	handlers.SetupRewardRoutes(app, admin, jwtAuth, rewardService)
	handlers.SetupInventoryRoutes(app, admin, jwtAuth, inventoryService)
	handlers.SetupCatalogRoutes(app, admin, jwtAuth, assetService, avatarService, contentService)
	handlers.SetupWellnessRoutes(app, admin, jwtAuth, wellnessService, trackingService)
	handlers.SetupPredictionRoutes(app, jwtAuth, predictionService, assessmentService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			logrus.Errorf("server error: %v", err)
		}
	}()

	logrus.Infof("server running on http://localhost:%s", port)
	logrus.Infof("CORS configured for origins: %s", strings.Join(origins, ","))

	<-ctx.Done()
	logrus.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}
