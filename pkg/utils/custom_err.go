package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrRecordNotFound     = errors.New("record not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrPlanNotFound       = errors.New("plan not found")
	ErrNoFreePlan         = errors.New("no free plan in catalog")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrTemplateTierLocked = errors.New("template requires a higher plan tier")
	ErrUnknownTier        = errors.New("unknown tier label")

	ErrQuotaExceeded       = errors.New("plan quota exceeded")
	ErrUnknownResource     = errors.New("unknown quota resource")
	ErrCustomURLTaken      = errors.New("custom url already taken")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidReferralCode = errors.New("invalid referral code")

	ErrInsufficientBalance  = errors.New("insufficient wallet balance")
	ErrAmountOutOfBounds    = errors.New("amount outside configured bounds")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrTransactionSettled   = errors.New("transaction already settled")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
