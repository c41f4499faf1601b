package utils

import (
	"testing"
	"time"

	"futureproof-backend/models"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-123", "user@example.com", models.RoleUser, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("user id = %q", claims.UserID)
	}
	if claims.Subject != "user@example.com" {
		t.Errorf("subject = %q", claims.Subject)
	}
	if claims.Role != models.RoleUser {
		t.Errorf("role = %q", claims.Role)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-123", "user@example.com", models.RoleUser, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("user-123", "user@example.com", models.RoleUser, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}
