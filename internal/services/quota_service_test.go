package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proforge/internal/models/db_models"
	"proforge/pkg/utils"
)

func newQuotaFixture(plan *db_models.Plan) (QuotaServiceInterface, *fakeProfilePageRepo, *fakeProductRepo) {
	subRepo := &fakeSubscriptionRepo{
		active: &db_models.Subscription{Status: db_models.SubStatusActive, Plan: *plan},
	}
	pageRepo := newFakeProfilePageRepo()
	productRepo := newFakeProductRepo()
	subscription := NewSubscriptionService(subRepo, newFakePlanRepo())
	return NewQuotaService(subscription, pageRepo, productRepo), pageRepo, productRepo
}

func TestEvaluateProfilesUnderLimit(t *testing.T) {
	svc, pageRepo, _ := newQuotaFixture(&db_models.Plan{Tier: "premium", MaxProfiles: 3})
	pageRepo.count = 2

	quota, err := svc.Evaluate(context.Background(), uuid.New(), db_models.ResourceProfiles)
	require.NoError(t, err)

	assert.True(t, quota.CanCreate)
	assert.False(t, quota.IsAtLimit)
	assert.Equal(t, int64(2), quota.CurrentCount)
	assert.Equal(t, int64(3), quota.MaxAllowed)
}

func TestEvaluateProfilesAtLimit(t *testing.T) {
	svc, pageRepo, _ := newQuotaFixture(&db_models.Plan{Tier: "free", MaxProfiles: 1})
	pageRepo.count = 1

	quota, err := svc.Evaluate(context.Background(), uuid.New(), db_models.ResourceProfiles)
	require.NoError(t, err)

	assert.False(t, quota.CanCreate)
	assert.True(t, quota.IsAtLimit)
}

func TestEvaluateProductsCountsProducts(t *testing.T) {
	svc, _, productRepo := newQuotaFixture(&db_models.Plan{Tier: "business", MaxProducts: 10})
	productRepo.count = 4

	quota, err := svc.Evaluate(context.Background(), uuid.New(), db_models.ResourceProducts)
	require.NoError(t, err)

	assert.Equal(t, int64(4), quota.CurrentCount)
	assert.Equal(t, int64(10), quota.MaxAllowed)
	assert.True(t, quota.CanCreate)
}

func TestEvaluateUnknownResource(t *testing.T) {
	svc, _, _ := newQuotaFixture(&db_models.Plan{Tier: "free", MaxProfiles: 1})

	_, err := svc.Evaluate(context.Background(), uuid.New(), "widgets")
	assert.ErrorIs(t, err, utils.ErrUnknownResource)
}

func TestEvaluatePerPayloadResourcesNotCountable(t *testing.T) {
	// Gallery limits are enforced at write time, not as an account-wide
	// count, so the quota endpoint refuses them.
	svc, _, _ := newQuotaFixture(&db_models.Plan{Tier: "free", MaxGalleries: 2})

	_, err := svc.Evaluate(context.Background(), uuid.New(), db_models.ResourceGalleries)
	assert.ErrorIs(t, err, utils.ErrUnknownResource)
}
