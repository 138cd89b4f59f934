package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TxnType string

const (
	TxnDeposit       TxnType = "deposit"
	TxnWithdrawal    TxnType = "withdrawal"
	TxnReferralBonus TxnType = "referral_bonus"
	TxnCommission    TxnType = "commission"
	TxnSubscription  TxnType = "subscription"
)

type TxnStatus string

const (
	TxnStatusPending   TxnStatus = "pending"
	TxnStatusApproved  TxnStatus = "approved"
	TxnStatusRejected  TxnStatus = "rejected"
	TxnStatusCompleted TxnStatus = "completed"
)

// Terminal reports whether s admits no further transition.
func (s TxnStatus) Terminal() bool {
	return s == TxnStatusApproved || s == TxnStatusRejected || s == TxnStatusCompleted
}

type WalletTransaction struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`

	Type        TxnType   `gorm:"size:20;index"`
	AmountMinor int64     `gorm:"not null"`
	Currency    string    `gorm:"size:3"`
	Status      TxnStatus `gorm:"size:12;index"`

	Method    PaymentMethod `gorm:"size:16"`
	Reference string        `gorm:"size:128"` // payer note, external receipt id

	AdminNote   *string
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt *int64

	SubscriptionID *uuid.UUID `gorm:"type:uuid;index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account      Account       `gorm:"foreignKey:AccountID"`
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID"`
}
