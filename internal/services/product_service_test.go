package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/pkg/utils"
)

func newProductFixture(plan *db_models.Plan) (ProductServiceInterface, *fakeProductRepo, uuid.UUID) {
	subRepo := &fakeSubscriptionRepo{
		active: &db_models.Subscription{Status: db_models.SubStatusActive, Plan: *plan},
	}
	productRepo := newFakeProductRepo()
	subscription := NewSubscriptionService(subRepo, newFakePlanRepo())
	return NewProductService(productRepo, subscription), productRepo, uuid.New()
}

func TestCreateProduct(t *testing.T) {
	svc, productRepo, accountID := newProductFixture(&db_models.Plan{Tier: "business", MaxProducts: 5, MaxImagesPerProduct: 4})

	product, err := svc.Create(context.Background(), accountID, request_models.CreateProductRequest{
		Name: "Logo design", PriceMinor: 15000, Currency: "USD",
		ImageURLs: []string{"https://cdn.example.com/a.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Logo design", product.Name)
	assert.True(t, product.IsActive)
	assert.Equal(t, int64(1), productRepo.count)
}

func TestCreateProductTooManyImages(t *testing.T) {
	svc, productRepo, accountID := newProductFixture(&db_models.Plan{Tier: "free", MaxProducts: 1, MaxImagesPerProduct: 2})

	_, err := svc.Create(context.Background(), accountID, request_models.CreateProductRequest{
		Name: "Logo design", PriceMinor: 15000, Currency: "USD",
		ImageURLs: []string{"https://a.png", "https://b.png", "https://c.png"},
	})
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)
	assert.Zero(t, productRepo.count)
}

func TestCreateProductQuotaExceeded(t *testing.T) {
	svc, productRepo, accountID := newProductFixture(&db_models.Plan{Tier: "free", MaxProducts: 1, MaxImagesPerProduct: 3})
	productRepo.count = 1

	_, err := svc.Create(context.Background(), accountID, request_models.CreateProductRequest{
		Name: "Second", PriceMinor: 100, Currency: "USD",
	})
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)
}

func TestUpdateProductImageLimitRechecked(t *testing.T) {
	svc, _, accountID := newProductFixture(&db_models.Plan{Tier: "free", MaxProducts: 2, MaxImagesPerProduct: 2})

	product, err := svc.Create(context.Background(), accountID, request_models.CreateProductRequest{
		Name: "Logo design", PriceMinor: 15000, Currency: "USD",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), accountID, product.ID.String(), request_models.UpdateProductRequest{
		ImageURLs: []string{"https://a.png", "https://b.png", "https://c.png"},
	})
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)
}

func TestDeleteProductOwnershipEnforced(t *testing.T) {
	svc, _, accountID := newProductFixture(&db_models.Plan{Tier: "free", MaxProducts: 2, MaxImagesPerProduct: 2})

	product, err := svc.Create(context.Background(), accountID, request_models.CreateProductRequest{
		Name: "Logo design", PriceMinor: 15000, Currency: "USD",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), product.ID.String())
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}
