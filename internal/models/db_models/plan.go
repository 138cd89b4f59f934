package db_models

import (
	"gorm.io/datatypes"
)

type BillingPeriod string

const (
	PeriodMonth BillingPeriod = "month"
	PeriodYear  BillingPeriod = "year"
)

// Plan is a catalog entry. All quota numbers live here — one source of
// truth for profile, gallery and product limits alike.
type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "free", "premium_monthly"
	Name        string
	Description *string

	Tier       string        `gorm:"size:16;index"` // free | premium | business | super
	Period     BillingPeriod `gorm:"size:8"`
	PriceMinor int64         // 999 = $9.99
	Currency   string        `gorm:"size:3"`
	IsActive   bool          `gorm:"default:true"`

	MaxProfiles         int `gorm:"not null;default:1"`
	MaxTemplates        int `gorm:"not null;default:1"`
	MaxGalleries        int `gorm:"not null;default:1"`
	MaxImagesPerGallery int `gorm:"not null;default:3"`
	MaxProducts         int `gorm:"not null;default:1"`
	MaxImagesPerProduct int `gorm:"not null;default:3"`

	Features    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Limitations datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}

// LimitFor maps a quota resource name to this plan's limit, false for
// resources the catalog does not meter.
func (p *Plan) LimitFor(resource string) (int, bool) {
	switch resource {
	case ResourceProfiles:
		return p.MaxProfiles, true
	case ResourceTemplates:
		return p.MaxTemplates, true
	case ResourceGalleries:
		return p.MaxGalleries, true
	case ResourceGalleryImages:
		return p.MaxImagesPerGallery, true
	case ResourceProducts:
		return p.MaxProducts, true
	case ResourceProductImages:
		return p.MaxImagesPerProduct, true
	}
	return 0, false
}

const (
	ResourceProfiles      = "profiles"
	ResourceTemplates     = "templates"
	ResourceGalleries     = "galleries"
	ResourceGalleryImages = "gallery_images"
	ResourceProducts      = "products"
	ResourceProductImages = "product_images"
)
