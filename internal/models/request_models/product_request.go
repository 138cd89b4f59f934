package request_models

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=120"`
	Description *string  `json:"description"`
	PriceMinor  int64    `json:"price_minor" binding:"gte=0"`
	Currency    string   `json:"currency" binding:"required,len=3"`
	ImageURLs   []string `json:"image_urls" binding:"omitempty,dive,url"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string  `json:"description"`
	PriceMinor  *int64   `json:"price_minor" binding:"omitempty,gte=0"`
	ImageURLs   []string `json:"image_urls" binding:"omitempty,dive,url"`
	IsActive    *bool    `json:"is_active"`
}
