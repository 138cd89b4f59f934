package db_models

import (
	"github.com/google/uuid"
)

// ReferralEarning records one commission credit: referrer earned
// AmountMinor (Percent of the source transaction) at chain depth Level.
type ReferralEarning struct {
	BaseModel
	ReferrerID uuid.UUID `gorm:"type:uuid;index"`
	ReferredID uuid.UUID `gorm:"type:uuid;index"`

	SourceTransactionID uuid.UUID `gorm:"type:uuid;index"`

	Level       int     `gorm:"not null"`
	Percent     float64 `gorm:"not null"`
	AmountMinor int64   `gorm:"not null"`

	Referrer          Account           `gorm:"foreignKey:ReferrerID"`
	Referred          Account           `gorm:"foreignKey:ReferredID"`
	SourceTransaction WalletTransaction `gorm:"foreignKey:SourceTransactionID"`
}
