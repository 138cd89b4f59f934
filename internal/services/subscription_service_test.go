package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/internal/models/response_models"
	"proforge/pkg/utils"
)

func newSubscriptionFixture(walletBalance int64) (*SubscriptionService, *fakeSubscriptionRepo, *fakePlanRepo) {
	subRepo := &fakeSubscriptionRepo{walletBalance: walletBalance}
	planRepo := newFakePlanRepo()
	svc := NewSubscriptionService(subRepo, planRepo).(*SubscriptionService)
	return svc, subRepo, planRepo
}

func TestCreateFreePlanActivatesImmediately(t *testing.T) {
	svc, subRepo, planRepo := newSubscriptionFixture(0)
	plan := planRepo.add(&db_models.Plan{
		Code: "free", Tier: "free", Period: db_models.PeriodMonth,
		PriceMinor: 0, Currency: "USD", IsActive: true,
	})

	resp, err := svc.Create(context.Background(), uuid.New(), request_models.CreateSubscriptionRequest{
		PlanID: plan.ID, PaymentMethod: "free",
	})
	require.NoError(t, err)

	assert.Equal(t, string(db_models.SubStatusActive), resp.Status)
	assert.Nil(t, resp.ExpiresAt)
	assert.Equal(t, string(db_models.MethodFree), resp.PaymentMethod)
	require.Len(t, subRepo.inserted, 1)
	assert.Empty(t, subRepo.insertedTxns)
}

func TestCreatePaidPlanExpiresOneMonthRegardlessOfPeriod(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	for _, period := range []db_models.BillingPeriod{db_models.PeriodMonth, db_models.PeriodYear} {
		svc, subRepo, planRepo := newSubscriptionFixture(0)
		svc.now = func() time.Time { return now }

		plan := planRepo.add(&db_models.Plan{
			Code: "premium_" + string(period), Tier: "premium", Period: period,
			PriceMinor: 9900, Currency: "USD", IsActive: true,
		})

		resp, err := svc.Create(context.Background(), uuid.New(), request_models.CreateSubscriptionRequest{
			PlanID: plan.ID, PaymentMethod: "manual",
		})
		require.NoError(t, err)

		// Even the yearly plan gets a one-month window.
		require.NotNil(t, resp.ExpiresAt)
		assert.Equal(t, now.AddDate(0, 1, 0).Unix(), *resp.ExpiresAt, "period %s", period)
		assert.Equal(t, string(db_models.SubStatusPending), resp.Status)

		require.Len(t, subRepo.insertedTxns, 1)
		txn := subRepo.insertedTxns[0]
		assert.Equal(t, db_models.TxnSubscription, txn.Type)
		assert.Equal(t, db_models.TxnStatusPending, txn.Status)
		assert.Equal(t, int64(9900), txn.AmountMinor)
	}
}

func TestCreateWalletPaymentDebitsBalance(t *testing.T) {
	svc, subRepo, planRepo := newSubscriptionFixture(10000)
	plan := planRepo.add(&db_models.Plan{
		Code: "premium", Tier: "premium", Period: db_models.PeriodMonth,
		PriceMinor: 9900, Currency: "USD", IsActive: true,
	})

	resp, err := svc.Create(context.Background(), uuid.New(), request_models.CreateSubscriptionRequest{
		PlanID: plan.ID, PaymentMethod: "wallet",
	})
	require.NoError(t, err)

	assert.Equal(t, string(db_models.SubStatusPending), resp.Status)
	assert.Equal(t, int64(100), subRepo.walletBalance)
}

func TestCreateWalletPaymentInsufficientBalance(t *testing.T) {
	svc, subRepo, planRepo := newSubscriptionFixture(500)
	plan := planRepo.add(&db_models.Plan{
		Code: "premium", Tier: "premium", Period: db_models.PeriodMonth,
		PriceMinor: 9900, Currency: "USD", IsActive: true,
	})

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateSubscriptionRequest{
		PlanID: plan.ID, PaymentMethod: "wallet",
	})
	assert.ErrorIs(t, err, utils.ErrInsufficientBalance)

	// Nothing written, balance untouched.
	assert.Empty(t, subRepo.inserted)
	assert.Equal(t, int64(500), subRepo.walletBalance)
}

func TestCreateInactivePlanRejected(t *testing.T) {
	svc, _, planRepo := newSubscriptionFixture(0)
	plan := planRepo.add(&db_models.Plan{
		Code: "legacy", Tier: "premium", PriceMinor: 9900, IsActive: false,
	})

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateSubscriptionRequest{
		PlanID: plan.ID, PaymentMethod: "manual",
	})
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestCurrentPlanPrefersActiveSubscription(t *testing.T) {
	svc, subRepo, planRepo := newSubscriptionFixture(0)
	planRepo.free = &db_models.Plan{Code: "free", Tier: "free", IsActive: true}

	subRepo.active = &db_models.Subscription{
		Status: db_models.SubStatusActive,
		Plan:   db_models.Plan{Code: "premium", Tier: "premium"},
	}

	resolution, err := svc.CurrentPlan(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, response_models.PlanSourceSubscription, resolution.Source)
	assert.Equal(t, "premium", resolution.Plan.Tier)
	assert.NotNil(t, resolution.Subscription)
}

func TestCurrentPlanFallsBackToFree(t *testing.T) {
	svc, _, planRepo := newSubscriptionFixture(0)
	planRepo.free = &db_models.Plan{Code: "free", Tier: "free", IsActive: true}

	resolution, err := svc.CurrentPlan(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, response_models.PlanSourceFreeFallback, resolution.Source)
	assert.Equal(t, "free", resolution.Plan.Tier)
	assert.Nil(t, resolution.Subscription)
}

func TestCurrentPlanMissingFreePlanIsAnError(t *testing.T) {
	svc, _, _ := newSubscriptionFixture(0)

	_, err := svc.CurrentPlan(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrNoFreePlan)
}
