package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type ProfilePageResponse struct {
	ID          uuid.UUID       `json:"id"`
	TemplateID  uuid.UUID       `json:"template_id"`
	CustomURL   string          `json:"custom_url"`
	ProfileData json.RawMessage `json:"profile_data"`
	IsActive    bool            `json:"is_active"`
	ViewCount   int64           `json:"view_count"`
	CreatedAt   int64           `json:"created_at"`
}

// PublicProfileResponse is what /u/:customURL exposes. No account
// identifiers beyond the page itself.
type PublicProfileResponse struct {
	CustomURL    string          `json:"custom_url"`
	TemplateSlug string          `json:"template_slug"`
	ProfileData  json.RawMessage `json:"profile_data"`
	ViewCount    int64           `json:"view_count"`
}

type TemplateResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	PreviewImage string    `json:"preview_image"`
	RequiredTier string    `json:"required_tier"`
	Accessible   bool      `json:"accessible"`
}

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceMinor  int64     `json:"price_minor"`
	Currency    string    `json:"currency"`
	ImageURLs   []string  `json:"image_urls"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   int64     `json:"created_at"`
}
