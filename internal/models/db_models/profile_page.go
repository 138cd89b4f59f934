package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfilePage is a built, shareable page. CustomURL is the public
// /u/<custom_url> handle and is globally unique.
type ProfilePage struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;index"`
	TemplateID uuid.UUID `gorm:"type:uuid;index"`

	CustomURL string `gorm:"uniqueIndex;size:64"`

	// Free-form page payload: name, bio, socials, skills, portfolio,
	// services, galleries.
	ProfileData datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	IsActive  bool  `gorm:"default:true"`
	ViewCount int64 `gorm:"not null;default:0"`

	Account  Account  `gorm:"foreignKey:AccountID"`
	Template Template `gorm:"foreignKey:TemplateID"`
}
