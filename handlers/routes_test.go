package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"futureproof-backend/middleware"
	"futureproof-backend/models"
	"futureproof-backend/services"
	"futureproof-backend/utils"
	"futureproof-backend/workers"
)

const testSecret = "test-secret"

// newTestApp wires the routes the way main does: one auth handler shared
// across the resource groups and a single guarded admin group. No handler
// that touches the database is invoked by these tests.
func newTestApp() *fiber.App {
	app := fiber.New()

	jwtAuth := middleware.JWTAuthMiddleware(testSecret)
	admin := app.Group("/admin", jwtAuth, middleware.AdminOnly())

	sleepTimers := workers.NewSleepTimerManager(context.Background(), nil, time.Hour)
	SetupUserRoutes(app, admin, jwtAuth,
		services.NewUserService(nil, nil, nil, testSecret, time.Hour),
		services.NewProgressionService(nil),
		services.NewLifecycleService(nil, nil),
		sleepTimers)
	SetupRewardRoutes(app, admin, jwtAuth, services.NewDailyRewardService(nil))

	return app
}

func bearerRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(bearerRequest(http.MethodGet, "/definitely-not-a-route", ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestSecuredRouteRequiresToken(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(bearerRequest(http.MethodGet, "/rewards", ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestAdminRouteRejectsNonAdmin(t *testing.T) {
	app := newTestApp()

	token, err := utils.GenerateJWT("user-1", "user@example.com", models.RoleUser, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	resp, err := app.Test(bearerRequest(http.MethodGet, "/admin/users", token))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

func TestValidTokenReachesSecuredHandler(t *testing.T) {
	app := newTestApp()

	token, err := utils.GenerateJWT("user-1", "user@example.com", models.RoleUser, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	resp, err := app.Test(bearerRequest(http.MethodGet, "/users/me/sleep-timer", token))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
