package response_models

import "github.com/google/uuid"

type AccountLoginResponse struct {
	Token string `json:"token"`
	Tier  string `json:"tier"`
}

type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt int64     `json:"created_at"`
}
