package services

import (
	"errors"
	"testing"
	"time"
)

func TestCheckClaimEligibilityFirstClaim(t *testing.T) {
	now := time.Now().UTC()
	if err := CheckClaimEligibility(nil, nil, "reward-1", now); err != nil {
		t.Fatalf("first claim should succeed, got %v", err)
	}
}

func TestCheckClaimEligibilityAlreadyClaimed(t *testing.T) {
	now := time.Now().UTC()
	err := CheckClaimEligibility([]string{"reward-1", "reward-2"}, nil, "reward-2", now)
	if !errors.Is(err, ErrAlreadyClaimed) {
		t.Fatalf("want ErrAlreadyClaimed, got %v", err)
	}
}

func TestCheckClaimEligibilityTooSoon(t *testing.T) {
	now := time.Now().UTC()
	next := now.Add(2 * time.Hour)
	err := CheckClaimEligibility([]string{"reward-1"}, &next, "reward-2", now)
	if !errors.Is(err, ErrClaimTooSoon) {
		t.Fatalf("want ErrClaimTooSoon, got %v", err)
	}
}

func TestCheckClaimEligibilityAlreadyClaimedWinsOverCooldown(t *testing.T) {
	// A duplicate claim reports the duplicate, not the cooldown.
	now := time.Now().UTC()
	next := now.Add(2 * time.Hour)
	err := CheckClaimEligibility([]string{"reward-1"}, &next, "reward-1", now)
	if !errors.Is(err, ErrAlreadyClaimed) {
		t.Fatalf("want ErrAlreadyClaimed, got %v", err)
	}
}

func TestCheckClaimEligibilityAtExactWindowOpen(t *testing.T) {
	now := time.Now().UTC()
	next := now
	if err := CheckClaimEligibility([]string{"reward-1"}, &next, "reward-2", now); err != nil {
		t.Fatalf("claim at exactly next_claim_at should succeed, got %v", err)
	}
}

func TestCheckClaimEligibilityAfterWindow(t *testing.T) {
	now := time.Now().UTC()
	next := now.Add(-time.Minute)
	if err := CheckClaimEligibility([]string{"reward-1"}, &next, "reward-2", now); err != nil {
		t.Fatalf("claim after window should succeed, got %v", err)
	}
}
