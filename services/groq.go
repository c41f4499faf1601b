// services/groq.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"

	"futureproof-backend/models"
	"futureproof-backend/utils"
)

const groqModel = "llama-3.3-70b-versatile"

// GroqClient talks to the Groq OpenAI-compatible chat completions endpoint.
// No retries: an upstream failure surfaces directly to the caller.
type GroqClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGroqClientFromEnv() *GroqClient {
	baseURL := os.Getenv("GROQCLOUD_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	return &GroqClient{
		APIKey:     os.Getenv("GROQCLOUD_API_KEY"),
		BaseURL:    baseURL,
		HTTPClient: utils.HTTPClient,
	}
}

// Complete sends a single-message chat completion and returns the raw
// assistant content.
func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model": groqModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(raw))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrUpstream)
	}
	return parsed.Choices[0].Message.Content, nil
}

// --- Markdown response parsing ---
// The model is prompted for fixed "### N. Section" headers with '*' bullets;
// parsing is line-prefix based and intentionally forgiving about anything
// that does not match.

// PredictionReport is the structured form of the risk-report response.
type PredictionReport struct {
	PredictedDiseases   []models.PredictedDisease
	PositiveHabits      []string
	AreasForImprovement []string
	Recommendations     []string
}

// ParsePredictionReport splits the markdown response into its four sections.
func ParsePredictionReport(content string) PredictionReport {
	var report PredictionReport
	section := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "### 1. Predicted Diseases"):
			section = "diseases"
			continue
		case strings.HasPrefix(line, "### 2. Positive Habits"):
			section = "habits"
			continue
		case strings.HasPrefix(line, "### 3. Areas for Improvement"):
			section = "improvement"
			continue
		case strings.HasPrefix(line, "### 4. Recommendations"):
			section = "recommendations"
			continue
		}

		if !strings.HasPrefix(line, "*") {
			continue
		}
		item := strings.TrimSpace(strings.TrimPrefix(line, "*"))

		switch section {
		case "diseases":
			condition, details, _ := strings.Cut(item, ":")
			report.PredictedDiseases = append(report.PredictedDiseases, models.PredictedDisease{
				Condition: strings.TrimSpace(condition),
				Details:   strings.TrimSpace(details),
			})
		case "habits":
			report.PositiveHabits = append(report.PositiveHabits, item)
		case "improvement":
			report.AreasForImprovement = append(report.AreasForImprovement, item)
		case "recommendations":
			report.Recommendations = append(report.Recommendations, item)
		}
	}
	return report
}

// rescoreLine matches "* Disease: 40% → 35%, reason" bullets.
var rescoreLine = regexp.MustCompile(`\* (.+?): (\d+(?:\.\d+)?)%\s*→\s*(\d+(?:\.\d+)?)%,\s*(.+)`)

// ParseAssessmentReport extracts re-scored likelihoods and fresh
// recommendations from the daily-assessment response.
func ParseAssessmentReport(content string) ([]models.UpdatedPrediction, []string) {
	var updated []models.UpdatedPrediction
	var recommendations []string
	section := ""

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.Contains(trimmed, "### Updated Predicted Diseases"):
			section = "predictions"
			continue
		case strings.Contains(trimmed, "### New Recommendations"):
			section = "recommendations"
			continue
		}

		switch section {
		case "predictions":
			if m := rescoreLine.FindStringSubmatch(trimmed); m != nil {
				oldPct, _ := strconv.ParseFloat(m[2], 64)
				newPct, _ := strconv.ParseFloat(m[3], 64)
				updated = append(updated, models.UpdatedPrediction{
					Condition:     strings.TrimSpace(m[1]),
					OldPercentage: oldPct,
					NewPercentage: newPct,
					Reason:        strings.TrimSpace(m[4]),
				})
			}
		case "recommendations":
			if strings.HasPrefix(trimmed, "*") {
				recommendations = append(recommendations, strings.TrimSpace(strings.TrimPrefix(trimmed, "*")))
			}
		}
	}
	return updated, recommendations
}
