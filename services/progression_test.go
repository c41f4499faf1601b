package services

import (
	"testing"

	"futureproof-backend/models"
)

func TestXPThreshold(t *testing.T) {
	cases := []struct {
		level int
		want  int64
	}{
		{1, 100},
		{2, 200},
		{5, 500},
		{0, 100},
		{-3, 100},
	}
	for _, c := range cases {
		if got := XPThreshold(c.level); got != c.want {
			t.Errorf("XPThreshold(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestApplyGrantNoLevelUp(t *testing.T) {
	user := &models.User{Coins: 10, XP: 20, Level: 1}
	ApplyGrant(user, 5, 30)

	if user.Coins != 15 {
		t.Errorf("coins = %d, want 15", user.Coins)
	}
	if user.XP != 50 || user.Level != 1 {
		t.Errorf("xp/level = %d/%d, want 50/1", user.XP, user.Level)
	}
}

func TestApplyGrantRollsOverAtThreshold(t *testing.T) {
	user := &models.User{XP: 95, Level: 1}
	ApplyGrant(user, 0, 10)

	if user.Level != 2 {
		t.Fatalf("level = %d, want 2", user.Level)
	}
	if user.XP != 5 {
		t.Errorf("xp = %d, want 5", user.XP)
	}
}

func TestApplyGrantMultipleLevelUps(t *testing.T) {
	// 0 XP at level 1, grant 350: 350-100=250 (level 2), 250-200=50 (level 3)
	user := &models.User{XP: 0, Level: 1}
	ApplyGrant(user, 0, 350)

	if user.Level != 3 {
		t.Fatalf("level = %d, want 3", user.Level)
	}
	if user.XP != 50 {
		t.Errorf("xp = %d, want 50", user.XP)
	}
}

func TestApplyGrantExactThreshold(t *testing.T) {
	user := &models.User{XP: 0, Level: 1}
	ApplyGrant(user, 0, 100)

	if user.Level != 2 || user.XP != 0 {
		t.Errorf("xp/level = %d/%d, want 0/2", user.XP, user.Level)
	}
}

func TestApplyGrantNegativeCoins(t *testing.T) {
	user := &models.User{Coins: 100, XP: 40, Level: 2}
	ApplyGrant(user, -60, 0)

	if user.Coins != 40 {
		t.Errorf("coins = %d, want 40", user.Coins)
	}
	if user.Level != 2 || user.XP != 40 {
		t.Errorf("xp/level changed: %d/%d", user.XP, user.Level)
	}
}

func TestApplyGrantInvariants(t *testing.T) {
	grants := []int64{10, 95, 350, 1000, 99, 1}
	user := &models.User{XP: 0, Level: 1}

	for _, g := range grants {
		before := user.Level
		ApplyGrant(user, 0, g)
		if user.Level < before {
			t.Fatalf("level decreased from %d to %d after grant %d", before, user.Level, g)
		}
		if user.XP < 0 || user.XP >= XPThreshold(user.Level) {
			t.Fatalf("xp %d out of range [0, %d) at level %d", user.XP, XPThreshold(user.Level), user.Level)
		}
	}
}
