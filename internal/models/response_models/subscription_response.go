package response_models

import "github.com/google/uuid"

type SubscriptionResponse struct {
	ID            uuid.UUID `json:"id"`
	PlanID        uuid.UUID `json:"plan_id"`
	PlanCode      string    `json:"plan_code"`
	Tier          string    `json:"tier"`
	Status        string    `json:"status"`
	StartsAt      int64     `json:"starts_at"`
	ExpiresAt     *int64    `json:"expires_at"` // null = unlimited
	PaymentMethod string    `json:"payment_method"`
}

// PlanSourceSubscription means an active subscription row resolved the
// plan; PlanSourceFreeFallback means no active subscription existed and
// the catalog's free plan was substituted. A lookup failure is an error,
// never a silent fallback.
const (
	PlanSourceSubscription = "subscription"
	PlanSourceFreeFallback = "free_fallback"
)

type CurrentPlanResponse struct {
	Plan   PlanResponse `json:"plan"`
	Source string       `json:"source"`
}
