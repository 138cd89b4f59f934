package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	"proforge/pkg/utils"
)

type ProductServiceInterface interface {
	Create(ctx context.Context, accountID uuid.UUID, request request_models.CreateProductRequest) (response_models.ProductResponse, error)
	Update(ctx context.Context, accountID uuid.UUID, productID string, request request_models.UpdateProductRequest) (response_models.ProductResponse, error)
	Delete(ctx context.Context, accountID uuid.UUID, productID string) error
	ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.ProductResponse, error)
}

type ProductService struct {
	productRepo  repositories.IProductRepository
	subscription SubscriptionServiceInterface
}

func NewProductService(productRepo repositories.IProductRepository, subscription SubscriptionServiceInterface) ProductServiceInterface {
	return &ProductService{
		productRepo:  productRepo,
		subscription: subscription,
	}
}

func (p *ProductService) Create(ctx context.Context, accountID uuid.UUID, request request_models.CreateProductRequest) (response_models.ProductResponse, error) {
	resolution, err := p.subscription.CurrentPlan(ctx, accountID)
	if err != nil {
		return response_models.ProductResponse{}, err
	}
	plan := resolution.Plan

	if len(request.ImageURLs) > plan.MaxImagesPerProduct {
		return response_models.ProductResponse{}, fmt.Errorf("%w: plan allows %d images per product", utils.ErrQuotaExceeded, plan.MaxImagesPerProduct)
	}

	images, _ := json.Marshal(request.ImageURLs)

	product := &db_models.Product{
		AccountID:   accountID,
		Name:        request.Name,
		Description: request.Description,
		PriceMinor:  request.PriceMinor,
		Currency:    request.Currency,
		ImageURLs:   images,
		IsActive:    true,
	}

	if err := p.productRepo.CreateWithQuota(ctx, product, plan.MaxProducts); err != nil {
		if err == utils.ErrQuotaExceeded {
			return response_models.ProductResponse{}, err
		}
		return response_models.ProductResponse{}, utils.ErrDatabaseError
	}

	return productToResponse(product), nil
}

func (p *ProductService) Update(ctx context.Context, accountID uuid.UUID, productID string, request request_models.UpdateProductRequest) (response_models.ProductResponse, error) {
	product, err := p.productRepo.FindByID(ctx, productID)
	if err != nil {
		return response_models.ProductResponse{}, utils.ErrDatabaseError
	}
	if product == nil || product.AccountID != accountID {
		return response_models.ProductResponse{}, utils.ErrProductNotFound
	}

	if request.ImageURLs != nil {
		resolution, err := p.subscription.CurrentPlan(ctx, accountID)
		if err != nil {
			return response_models.ProductResponse{}, err
		}
		if len(request.ImageURLs) > resolution.Plan.MaxImagesPerProduct {
			return response_models.ProductResponse{}, fmt.Errorf("%w: plan allows %d images per product",
				utils.ErrQuotaExceeded, resolution.Plan.MaxImagesPerProduct)
		}
		images, _ := json.Marshal(request.ImageURLs)
		product.ImageURLs = images
	}

	if request.Name != nil {
		product.Name = *request.Name
	}
	if request.Description != nil {
		product.Description = request.Description
	}
	if request.PriceMinor != nil {
		product.PriceMinor = *request.PriceMinor
	}
	if request.IsActive != nil {
		product.IsActive = *request.IsActive
	}

	if err := p.productRepo.Update(ctx, product); err != nil {
		return response_models.ProductResponse{}, utils.ErrDatabaseError
	}

	return productToResponse(product), nil
}

func (p *ProductService) Delete(ctx context.Context, accountID uuid.UUID, productID string) error {
	product, err := p.productRepo.FindByID(ctx, productID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil || product.AccountID != accountID {
		return utils.ErrProductNotFound
	}

	if err := p.productRepo.Delete(ctx, productID, accountID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *ProductService) ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.ProductResponse, error) {
	products, err := p.productRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, productToResponse(&products[i]))
	}
	return result, nil
}

func productToResponse(product *db_models.Product) response_models.ProductResponse {
	var images []string
	_ = json.Unmarshal(product.ImageURLs, &images)

	return response_models.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		PriceMinor:  product.PriceMinor,
		Currency:    product.Currency,
		ImageURLs:   images,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
	}
}
