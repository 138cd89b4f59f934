package db_models

type Template struct {
	BaseModel
	Name         string
	Slug         string `gorm:"uniqueIndex"`
	PreviewImage string
	RequiredTier string `gorm:"size:16;index"` // minimum plan tier
	IsActive     bool   `gorm:"default:true"`
}
