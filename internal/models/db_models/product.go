package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`

	Name        string
	Description *string
	PriceMinor  int64
	Currency    string `gorm:"size:3"`

	// Hosted elsewhere; stored as URL strings only.
	ImageURLs datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	IsActive bool `gorm:"default:true"`

	Account Account `gorm:"foreignKey:AccountID"`
}
