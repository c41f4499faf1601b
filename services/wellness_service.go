// services/wellness_service.go
package services

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"futureproof-backend/models"
	"futureproof-backend/utils"
)

// WellnessService covers the activity library: physical activities,
// meditation/breathing content and the health quiz.
type WellnessService struct {
	DB *gorm.DB
}

func NewWellnessService(db *gorm.DB) *WellnessService {
	return &WellnessService{DB: db}
}

// --- Physical activities ---

func (s *WellnessService) CreateActivity(c *fiber.Ctx) error {
	var req struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		DurationMinutes int    `json:"duration_minutes"`
		Intensity       string `json:"intensity"`
		Coins           int64  `json:"coins"`
		XP              int64  `json:"xp"`
		ImageURL        string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	activity := models.PhysicalActivity{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		Coins:           req.Coins,
		XP:              req.XP,
		ImageURL:        req.ImageURL,
	}
	if err := s.DB.Create(&activity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create activity"})
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}

func (s *WellnessService) ListActivities(c *fiber.Ctx) error {
	var activities []models.PhysicalActivity
	if err := s.DB.Find(&activities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}
	return c.JSON(activities)
}

func (s *WellnessService) DeleteActivity(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.PhysicalActivity{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete activity"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activity not found"})
	}
	return c.JSON(fiber.Map{"message": "Activity deleted successfully"})
}

// --- Meditation / breathing ---

// CreateMeditation accepts a multipart form; the video file is pushed to R2.
func (s *WellnessService) CreateMeditation(c *fiber.Ctx) error {
	title := c.FormValue("title")
	kind := c.FormValue("kind")
	if title == "" || (kind != "meditation" && kind != "breathing") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title and kind (meditation|breathing) are required"})
	}
	duration, _ := strconv.Atoi(c.FormValue("duration_minutes", "0"))

	content := models.MeditationContent{
		Title:           title,
		Description:     c.FormValue("description"),
		Kind:            kind,
		DurationMinutes: duration,
	}

	if file, err := c.FormFile("video"); err == nil {
		url, err := utils.UploadFileToR2(file, utils.MediaKey("meditation", title, file.Filename))
		if err != nil {
			logrus.Errorf("meditation video upload failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Video upload failed"})
		}
		content.VideoURL = url
	}

	if err := s.DB.Create(&content).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create content"})
	}
	return c.Status(fiber.StatusCreated).JSON(content)
}

func (s *WellnessService) ListMeditation(c *fiber.Ctx) error {
	query := s.DB.Model(&models.MeditationContent{})
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var contents []models.MeditationContent
	if err := query.Find(&contents).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch content"})
	}
	return c.JSON(contents)
}

func (s *WellnessService) DeleteMeditation(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.MeditationContent{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete content"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Content not found"})
	}
	return c.JSON(fiber.Map{"message": "Content deleted successfully"})
}

// --- Health quiz ---

func (s *WellnessService) CreateQuestions(c *fiber.Ctx) error {
	var req []struct {
		Question string   `json:"question"`
		Choices  []string `json:"choices"`
		Answer   string   `json:"answer"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	questions := make([]models.QuizQuestion, 0, len(req))
	for _, q := range req {
		if q.Question == "" || q.Answer == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "question and answer are required"})
		}
		questions = append(questions, models.QuizQuestion{
			Question: q.Question,
			Choices:  q.Choices,
			Answer:   q.Answer,
		})
	}
	if len(questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no questions supplied"})
	}

	if err := s.DB.Create(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create questions"})
	}
	return c.Status(fiber.StatusCreated).JSON(questions)
}

// RandomQuestions draws 10 random questions for a quiz round.
func (s *WellnessService) RandomQuestions(c *fiber.Ctx) error {
	var questions []models.QuizQuestion
	if err := s.DB.Order("RANDOM()").Limit(10).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}
	if len(questions) < 10 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Not enough questions available"})
	}
	return c.JSON(questions)
}

// SubmitQuiz scores the submitted answers against the referenced questions.
func (s *WellnessService) SubmitQuiz(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		QuestionIDs []string `json:"question_ids"`
		Answers     []string `json:"answers"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.QuestionIDs) == 0 || len(req.QuestionIDs) != len(req.Answers) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "question_ids and answers must align"})
	}

	var questions []models.QuizQuestion
	if err := s.DB.Where("id IN ?", req.QuestionIDs).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}
	answerByID := make(map[string]string, len(questions))
	for _, q := range questions {
		answerByID[q.ID] = q.Answer
	}

	score := 0
	for i, qid := range req.QuestionIDs {
		if answerByID[qid] == req.Answers[i] {
			score++
		}
	}

	result := models.QuizResult{UserID: userID, Answers: req.Answers, Score: score}
	if err := s.DB.Create(&result).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store quiz result"})
	}

	return c.JSON(fiber.Map{"message": "Quiz submitted successfully", "score": score})
}

func (s *WellnessService) QuizHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var history []models.QuizResult
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&history).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch history"})
	}
	return c.JSON(history)
}
