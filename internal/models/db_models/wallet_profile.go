package db_models

import (
	"github.com/google/uuid"
)

// WalletProfile is created at signup, one per account. Balance and
// earnings are minor units. Mutations go through a row lock so the
// balance and the transaction log cannot drift.
type WalletProfile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	WalletBalanceMinor int64 `gorm:"not null;default:0"`
	TotalEarningsMinor int64 `gorm:"not null;default:0"`

	ReferralCode  string     `gorm:"uniqueIndex;size:20"`
	ReferralCount int        `gorm:"not null;default:0"`
	ReferrerID    *uuid.UUID `gorm:"type:uuid;index"`

	Account  Account  `gorm:"foreignKey:AccountID"`
	Referrer *Account `gorm:"foreignKey:ReferrerID"`
}
