package db_models

import "github.com/google/uuid"

// PaymentSetting holds the manual-payment instruction text shown at
// deposit time plus the accepted deposit bounds. One row in practice.
type PaymentSetting struct {
	BaseModel
	Instructions    string
	MinDepositMinor int64  `gorm:"not null;default:0"`
	MaxDepositMinor int64  `gorm:"not null;default:0"` // 0 = unbounded
	Currency        string `gorm:"size:3"`

	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
}
