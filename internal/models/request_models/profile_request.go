package request_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateProfileRequest struct {
	TemplateID  uuid.UUID       `json:"template_id" binding:"required"`
	CustomURL   string          `json:"custom_url" binding:"required,min=3,max=64,alphanum"`
	ProfileData json.RawMessage `json:"profile_data"`
}

type UpdateProfileRequest struct {
	TemplateID  *uuid.UUID      `json:"template_id"`
	CustomURL   *string         `json:"custom_url" binding:"omitempty,min=3,max=64,alphanum"`
	ProfileData json.RawMessage `json:"profile_data"`
	IsActive    *bool           `json:"is_active"`
}
