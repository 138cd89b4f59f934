package response_models

type QuotaResponse struct {
	Resource     string `json:"resource"`
	CanCreate    bool   `json:"can_create"`
	CurrentCount int64  `json:"current_count"`
	MaxAllowed   int64  `json:"max_allowed"`
	IsAtLimit    bool   `json:"is_at_limit"`
}
