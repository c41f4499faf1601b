package utils

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPTTL is how long a pending code stays valid.
const OTPTTL = 10 * time.Minute

// GenerateOTP returns a 6-digit numeric code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func otpKey(email string) string {
	return "otp:" + email
}

// OTPMatch compares codes in constant time.
func OTPMatch(stored, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}

// StoreOTP saves a pending code for the email with the standard TTL.
func StoreOTP(ctx context.Context, rdb *redis.Client, email, otp string) error {
	return SetCache(ctx, rdb, otpKey(email), otp, OTPTTL)
}

// VerifyOTP checks the submitted code against the pending one and consumes
// it on match (single-use).
func VerifyOTP(ctx context.Context, rdb *redis.Client, email, otp string) (bool, error) {
	var stored string
	found, err := GetCache(ctx, rdb, otpKey(email), &stored)
	if err != nil {
		return false, err
	}
	if !found || !OTPMatch(stored, otp) {
		return false, nil
	}
	return true, DeleteCache(ctx, rdb, otpKey(email))
}
