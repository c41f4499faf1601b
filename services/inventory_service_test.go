package services

import (
	"errors"
	"testing"

	"futureproof-backend/models"
)

func TestCheckPurchase(t *testing.T) {
	cases := []struct {
		balance, price int64
		want           error
	}{
		{0, 50, ErrInsufficientCoins},
		{49, 50, ErrInsufficientCoins},
		{50, 50, nil},
		{100, 50, nil},
		{0, 0, nil},
	}
	for _, c := range cases {
		if got := CheckPurchase(c.balance, c.price); !errors.Is(got, c.want) {
			t.Errorf("CheckPurchase(%d, %d) = %v, want %v", c.balance, c.price, got, c.want)
		}
	}
}

func TestFailedPurchaseLeavesBalanceUntouched(t *testing.T) {
	user := models.User{Coins: 30, XP: 10, Level: 1}

	if err := CheckPurchase(user.Coins, 50); !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("want ErrInsufficientCoins, got %v", err)
	}

	// The check runs before any debit, so the rejected purchase never
	// touches the user.
	if user.Coins != 30 || user.XP != 10 || user.Level != 1 {
		t.Errorf("user mutated: %+v", user)
	}
}
