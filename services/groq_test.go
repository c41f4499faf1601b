package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleReport = `### 1. Predicted Diseases with likelihood in percentage
* Type 2 Diabetes: 40%, driven by diet and sedentary lifestyle
* Hypertension: 25%, family history is a contributing factor

### 2. Positive Habits
* Gets regular sleep

### 3. Areas for Improvement
* Reduce processed food intake
* Increase daily activity

### 4. Recommendations
* Walk at least 30 minutes a day
* Schedule an annual checkup
`

func TestParsePredictionReport(t *testing.T) {
	report := ParsePredictionReport(sampleReport)

	if len(report.PredictedDiseases) != 2 {
		t.Fatalf("diseases = %d, want 2", len(report.PredictedDiseases))
	}
	if report.PredictedDiseases[0].Condition != "Type 2 Diabetes" {
		t.Errorf("condition = %q", report.PredictedDiseases[0].Condition)
	}
	if report.PredictedDiseases[0].Details != "40%, driven by diet and sedentary lifestyle" {
		t.Errorf("details = %q", report.PredictedDiseases[0].Details)
	}
	if len(report.PositiveHabits) != 1 || report.PositiveHabits[0] != "Gets regular sleep" {
		t.Errorf("habits = %v", report.PositiveHabits)
	}
	if len(report.AreasForImprovement) != 2 {
		t.Errorf("improvements = %v", report.AreasForImprovement)
	}
	if len(report.Recommendations) != 2 {
		t.Errorf("recommendations = %v", report.Recommendations)
	}
}

func TestParsePredictionReportIgnoresUnstructuredText(t *testing.T) {
	content := "Here is your report.\n\nSome intro paragraph.\n* stray bullet before any section\n"
	report := ParsePredictionReport(content)

	if len(report.PredictedDiseases)+len(report.PositiveHabits)+
		len(report.AreasForImprovement)+len(report.Recommendations) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}

const sampleAssessment = `### Updated Predicted Diseases with likelihood in percentage
* Type 2 Diabetes: 40% → 35%, improved diet today
* Hypertension: 25% → 25%, no relevant change

### New Recommendations
* Keep up the water intake
* Add a short evening walk
`

func TestParseAssessmentReport(t *testing.T) {
	updated, recs := ParseAssessmentReport(sampleAssessment)

	if len(updated) != 2 {
		t.Fatalf("updated = %d, want 2", len(updated))
	}
	first := updated[0]
	if first.Condition != "Type 2 Diabetes" {
		t.Errorf("condition = %q", first.Condition)
	}
	if first.OldPercentage != 40 || first.NewPercentage != 35 {
		t.Errorf("percentages = %v → %v", first.OldPercentage, first.NewPercentage)
	}
	if first.Reason != "improved diet today" {
		t.Errorf("reason = %q", first.Reason)
	}
	if len(recs) != 2 {
		t.Errorf("recommendations = %v", recs)
	}
}

func TestParseAssessmentReportSkipsMalformedBullets(t *testing.T) {
	content := "### Updated Predicted Diseases with likelihood in percentage\n" +
		"* Missing the arrow format entirely\n"
	updated, _ := ParseAssessmentReport(content)
	if len(updated) != 0 {
		t.Errorf("expected no updates, got %v", updated)
	}
}

func TestGroqCompleteParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	}))
	defer srv.Close()

	client := &GroqClient{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	content, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != "hello" {
		t.Errorf("content = %q", content)
	}
}

func TestGroqCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &GroqClient{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
}
