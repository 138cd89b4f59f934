package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusPending  SubscriptionStatus = "pending"
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusRejected SubscriptionStatus = "rejected"
	SubStatusExpired  SubscriptionStatus = "expired"
)

type PaymentMethod string

const (
	MethodFree   PaymentMethod = "free"
	MethodWallet PaymentMethod = "wallet"
	MethodManual PaymentMethod = "manual"
)

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	PlanID    uuid.UUID `gorm:"type:uuid;index"`

	Status SubscriptionStatus `gorm:"size:16;index"`

	StartsAt int64 `gorm:"not null"`
	// Nil means no expiry (free tier). Paid subscriptions always get
	// StartsAt + 1 month here regardless of the plan period; see the
	// subscription service.
	ExpiresAt *int64

	PaymentMethod PaymentMethod `gorm:"size:16"`
	ApprovedAt    *int64

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
	Plan    Plan    `gorm:"foreignKey:PlanID"`
}
