package services

import "errors"

// Sentinel errors translated to HTTP statuses at the route boundary.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrAlreadyClaimed     = errors.New("reward already claimed")
	ErrClaimTooSoon       = errors.New("next claim window not yet open")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrInsufficientCoins  = errors.New("insufficient coins")
	ErrNothingEquipped    = errors.New("nothing equipped in that slot")
	ErrUpstream           = errors.New("upstream text-generation call failed")
)
