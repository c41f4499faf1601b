package services

import (
	"testing"
	"time"

	"futureproof-backend/models"
)

func TestClampVital(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-10, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{150, 100},
	}
	for _, c := range cases {
		if got := ClampVital(c.in); got != c.want {
			t.Errorf("ClampVital(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestApplyVerificationFreshAccount(t *testing.T) {
	user := models.User{Verified: false}

	if ApplyVerification(&user) {
		t.Error("fresh account should not report a reactivation")
	}
	if !user.Verified {
		t.Error("account not marked verified")
	}
}

func TestApplyVerificationReactivatesDisabledAccount(t *testing.T) {
	disabledAt := time.Now().UTC()
	user := models.User{Verified: true, Disabled: true, DisabledAt: &disabledAt}

	if !ApplyVerification(&user) {
		t.Fatal("disabled account should report a reactivation")
	}
	if user.Disabled || user.DisabledAt != nil {
		t.Errorf("account still disabled: disabled=%v disabled_at=%v", user.Disabled, user.DisabledAt)
	}
	if !user.Verified {
		t.Error("account not marked verified")
	}
}

