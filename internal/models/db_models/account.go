package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"index;default:user"`

	// Admin-toggled flag. Persisted only; nothing enforces it yet, pending
	// a product decision on suspension semantics.
	IsActive bool `gorm:"default:true"`

	WalletProfile *WalletProfile
	ProfilePages  []ProfilePage
	Products      []Product
}
