package request_models

type ReviewTransactionRequest struct {
	AdminNote *string `json:"admin_note" binding:"omitempty,max=500"`
}

type UpsertPlanRequest struct {
	Code        string  `json:"code" binding:"required,min=2,max=40"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`

	Tier       string `json:"tier" binding:"required"`
	Period     string `json:"period" binding:"required,oneof=month year"`
	PriceMinor int64  `json:"price_minor" binding:"gte=0"`
	Currency   string `json:"currency" binding:"required,len=3"`
	IsActive   *bool  `json:"is_active"`

	MaxProfiles         int `json:"max_profiles" binding:"gte=0"`
	MaxTemplates        int `json:"max_templates" binding:"gte=0"`
	MaxGalleries        int `json:"max_galleries" binding:"gte=0"`
	MaxImagesPerGallery int `json:"max_images_per_gallery" binding:"gte=0"`
	MaxProducts         int `json:"max_products" binding:"gte=0"`
	MaxImagesPerProduct int `json:"max_images_per_product" binding:"gte=0"`

	Features    []string `json:"features"`
	Limitations []string `json:"limitations"`
}

type UpdatePaymentSettingsRequest struct {
	Instructions    string `json:"instructions" binding:"required"`
	MinDepositMinor int64  `json:"min_deposit_minor" binding:"gte=0"`
	MaxDepositMinor int64  `json:"max_deposit_minor" binding:"gte=0"`
	Currency        string `json:"currency" binding:"required,len=3"`
}

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type SetProductActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
