package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	"proforge/pkg/utils"
)

// PlanResolution is the tagged outcome of resolving a user's current
// plan: callers can tell a real subscription from the free fallback,
// and a lookup failure is an error rather than a silent downgrade.
type PlanResolution struct {
	Plan         *db_models.Plan
	Source       string // response_models.PlanSourceSubscription | PlanSourceFreeFallback
	Subscription *db_models.Subscription
}

type SubscriptionServiceInterface interface {
	CurrentPlan(ctx context.Context, accountID uuid.UUID) (PlanResolution, error)
	Current(ctx context.Context, accountID uuid.UUID) (response_models.CurrentPlanResponse, error)
	Create(ctx context.Context, accountID uuid.UUID, request request_models.CreateSubscriptionRequest) (response_models.SubscriptionResponse, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error)
}

type SubscriptionService struct {
	subRepo  repositories.ISubscriptionRepository
	planRepo repositories.IPlanRepository
	now      func() time.Time
}

func NewSubscriptionService(subRepo repositories.ISubscriptionRepository, planRepo repositories.IPlanRepository) SubscriptionServiceInterface {
	return &SubscriptionService{
		subRepo:  subRepo,
		planRepo: planRepo,
		now:      time.Now,
	}
}

func (s *SubscriptionService) CurrentPlan(ctx context.Context, accountID uuid.UUID) (PlanResolution, error) {
	sub, err := s.subRepo.FindActiveByAccount(ctx, accountID)
	if err != nil {
		return PlanResolution{}, utils.ErrDatabaseError
	}

	if sub != nil {
		return PlanResolution{
			Plan:         &sub.Plan,
			Source:       response_models.PlanSourceSubscription,
			Subscription: sub,
		}, nil
	}

	free, err := s.planRepo.GetFreePlan(ctx)
	if err != nil {
		return PlanResolution{}, utils.ErrDatabaseError
	}
	if free == nil {
		return PlanResolution{}, utils.ErrNoFreePlan
	}

	return PlanResolution{
		Plan:   free,
		Source: response_models.PlanSourceFreeFallback,
	}, nil
}

func (s *SubscriptionService) Current(ctx context.Context, accountID uuid.UUID) (response_models.CurrentPlanResponse, error) {
	resolution, err := s.CurrentPlan(ctx, accountID)
	if err != nil {
		return response_models.CurrentPlanResponse{}, err
	}

	return response_models.CurrentPlanResponse{
		Plan:   PlanToResponse(resolution.Plan),
		Source: resolution.Source,
	}, nil
}

func (s *SubscriptionService) Create(ctx context.Context, accountID uuid.UUID, request request_models.CreateSubscriptionRequest) (response_models.SubscriptionResponse, error) {
	plan, err := s.planRepo.GetByID(ctx, request.PlanID.String())
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}
	if plan == nil || !plan.IsActive {
		return response_models.SubscriptionResponse{}, utils.ErrPlanNotFound
	}

	now := s.now()

	if plan.PriceMinor == 0 {
		sub := &db_models.Subscription{
			AccountID:     accountID,
			PlanID:        plan.ID,
			Status:        db_models.SubStatusActive,
			StartsAt:      now.Unix(),
			ExpiresAt:     nil, // free tier never expires
			PaymentMethod: db_models.MethodFree,
		}
		if err := s.subRepo.Insert(ctx, sub); err != nil {
			return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
		}
		return subscriptionToResponse(sub, plan), nil
	}

	// Paid plans expire one calendar month after creation regardless of
	// the plan's stated billing period. A yearly plan gets the same
	// one-month window here; activation does not extend it. Known
	// discrepancy, deliberately preserved until product says otherwise.
	expires := now.AddDate(0, 1, 0).Unix()

	sub := &db_models.Subscription{
		AccountID: accountID,
		PlanID:    plan.ID,
		Status:    db_models.SubStatusPending,
		StartsAt:  now.Unix(),
		ExpiresAt: &expires,
	}
	txn := &db_models.WalletTransaction{
		AccountID:   accountID,
		Type:        db_models.TxnSubscription,
		AmountMinor: plan.PriceMinor,
		Currency:    plan.Currency,
		Status:      db_models.TxnStatusPending,
	}

	switch db_models.PaymentMethod(request.PaymentMethod) {
	case db_models.MethodWallet:
		sub.PaymentMethod = db_models.MethodWallet
		txn.Method = db_models.MethodWallet
		// Balance gate and all inserts are one atomic operation; on a
		// short balance nothing is written.
		if err := s.subRepo.InsertPaidWallet(ctx, sub, txn); err != nil {
			if err == utils.ErrInsufficientBalance {
				return response_models.SubscriptionResponse{}, err
			}
			return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
		}
	default:
		sub.PaymentMethod = db_models.MethodManual
		txn.Method = db_models.MethodManual
		if err := s.subRepo.InsertPaidManual(ctx, sub, txn); err != nil {
			return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
		}
	}

	return subscriptionToResponse(sub, plan), nil
}

func (s *SubscriptionService) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error) {
	subs, err := s.subRepo.FindAllByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		result = append(result, subscriptionToResponse(&subs[i], &subs[i].Plan))
	}
	return result, nil
}

func subscriptionToResponse(sub *db_models.Subscription, plan *db_models.Plan) response_models.SubscriptionResponse {
	return response_models.SubscriptionResponse{
		ID:            sub.ID,
		PlanID:        sub.PlanID,
		PlanCode:      plan.Code,
		Tier:          plan.Tier,
		Status:        string(sub.Status),
		StartsAt:      sub.StartsAt,
		ExpiresAt:     sub.ExpiresAt,
		PaymentMethod: string(sub.PaymentMethod),
	}
}
