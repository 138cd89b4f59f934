package request_models

import "github.com/google/uuid"

type CreateSubscriptionRequest struct {
	PlanID        uuid.UUID `json:"plan_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=free wallet manual"`
}
