package response_models

import "github.com/google/uuid"

type PlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`

	Tier       string `json:"tier"`
	Period     string `json:"period"`
	PriceMinor int64  `json:"price_minor"`
	Currency   string `json:"currency"`
	IsActive   bool   `json:"is_active"`

	MaxProfiles         int `json:"max_profiles"`
	MaxTemplates        int `json:"max_templates"`
	MaxGalleries        int `json:"max_galleries"`
	MaxImagesPerGallery int `json:"max_images_per_gallery"`
	MaxProducts         int `json:"max_products"`
	MaxImagesPerProduct int `json:"max_images_per_product"`

	Features    []string `json:"features,omitempty"`
	Limitations []string `json:"limitations,omitempty"`
}
