package services

import (
	"context"

	"github.com/google/uuid"

	"proforge/internal/models/db_models"
	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	"proforge/pkg/utils"
)

// QuotaService evaluates countable resources against the current plan's
// catalog limits. Per-payload limits (gallery images, product images)
// are enforced at write time by the owning service using the same plan
// row, so all numbers come from one source.
type QuotaServiceInterface interface {
	Evaluate(ctx context.Context, accountID uuid.UUID, resource string) (response_models.QuotaResponse, error)
}

type QuotaService struct {
	subscription SubscriptionServiceInterface
	pageRepo     repositories.IProfilePageRepository
	productRepo  repositories.IProductRepository
}

func NewQuotaService(
	subscription SubscriptionServiceInterface,
	pageRepo repositories.IProfilePageRepository,
	productRepo repositories.IProductRepository,
) QuotaServiceInterface {
	return &QuotaService{
		subscription: subscription,
		pageRepo:     pageRepo,
		productRepo:  productRepo,
	}
}

func (q *QuotaService) Evaluate(ctx context.Context, accountID uuid.UUID, resource string) (response_models.QuotaResponse, error) {
	resolution, err := q.subscription.CurrentPlan(ctx, accountID)
	if err != nil {
		return response_models.QuotaResponse{}, err
	}

	limit, ok := resolution.Plan.LimitFor(resource)
	if !ok {
		return response_models.QuotaResponse{}, utils.ErrUnknownResource
	}

	var count int64
	switch resource {
	case db_models.ResourceProfiles:
		count, err = q.pageRepo.CountByAccount(ctx, accountID)
	case db_models.ResourceProducts:
		count, err = q.productRepo.CountByAccount(ctx, accountID)
	default:
		// Galleries and image limits are per-page/per-product; there is
		// no account-wide count to compare.
		return response_models.QuotaResponse{}, utils.ErrUnknownResource
	}
	if err != nil {
		return response_models.QuotaResponse{}, utils.ErrDatabaseError
	}

	return response_models.QuotaResponse{
		Resource:     resource,
		CanCreate:    count < int64(limit),
		CurrentCount: count,
		MaxAllowed:   int64(limit),
		IsAtLimit:    count >= int64(limit),
	}, nil
}
