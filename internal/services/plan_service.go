package services

import (
	"context"
	"encoding/json"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	"proforge/pkg/tier"
	"proforge/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlans(ctx context.Context, includeInactive bool) ([]response_models.PlanResponse, error)
	GetPlanByID(ctx context.Context, planID string) (response_models.PlanResponse, error)
	CreatePlan(ctx context.Context, request request_models.UpsertPlanRequest) (response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, planID string, request request_models.UpsertPlanRequest) (response_models.PlanResponse, error)
	DeletePlan(ctx context.Context, planID string) error
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (p *PlanService) GetPlans(ctx context.Context, includeInactive bool) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.GetAll(ctx, !includeInactive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, PlanToResponse(&plans[i]))
	}
	return result, nil
}

func (p *PlanService) GetPlanByID(ctx context.Context, planID string) (response_models.PlanResponse, error) {
	plan, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}

	return PlanToResponse(plan), nil
}

func (p *PlanService) CreatePlan(ctx context.Context, request request_models.UpsertPlanRequest) (response_models.PlanResponse, error) {
	plan, err := planFromRequest(&db_models.Plan{}, request)
	if err != nil {
		return response_models.PlanResponse{}, err
	}

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	return PlanToResponse(plan), nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, planID string, request request_models.UpsertPlanRequest) (response_models.PlanResponse, error) {
	existing, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}

	plan, err := planFromRequest(existing, request)
	if err != nil {
		return response_models.PlanResponse{}, err
	}

	if err := p.planRepo.Update(ctx, plan); err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	return PlanToResponse(plan), nil
}

func (p *PlanService) DeletePlan(ctx context.Context, planID string) error {
	existing, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPlanNotFound
	}

	if err := p.planRepo.Delete(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func planFromRequest(plan *db_models.Plan, request request_models.UpsertPlanRequest) (*db_models.Plan, error) {
	if _, err := tier.Parse(request.Tier); err != nil {
		return nil, utils.ErrUnknownTier
	}

	plan.Code = request.Code
	plan.Name = request.Name
	plan.Description = request.Description
	plan.Tier = request.Tier
	plan.Period = db_models.BillingPeriod(request.Period)
	plan.PriceMinor = request.PriceMinor
	plan.Currency = request.Currency
	plan.MaxProfiles = request.MaxProfiles
	plan.MaxTemplates = request.MaxTemplates
	plan.MaxGalleries = request.MaxGalleries
	plan.MaxImagesPerGallery = request.MaxImagesPerGallery
	plan.MaxProducts = request.MaxProducts
	plan.MaxImagesPerProduct = request.MaxImagesPerProduct

	if request.IsActive != nil {
		plan.IsActive = *request.IsActive
	} else {
		plan.IsActive = true
	}

	features, _ := json.Marshal(request.Features)
	limitations, _ := json.Marshal(request.Limitations)
	plan.Features = features
	plan.Limitations = limitations

	return plan, nil
}

// PlanToResponse is shared with the subscription resolver.
func PlanToResponse(plan *db_models.Plan) response_models.PlanResponse {
	var features, limitations []string
	_ = json.Unmarshal(plan.Features, &features)
	_ = json.Unmarshal(plan.Limitations, &limitations)

	return response_models.PlanResponse{
		ID:                  plan.ID,
		Code:                plan.Code,
		Name:                plan.Name,
		Description:         plan.Description,
		Tier:                plan.Tier,
		Period:              string(plan.Period),
		PriceMinor:          plan.PriceMinor,
		Currency:            plan.Currency,
		IsActive:            plan.IsActive,
		MaxProfiles:         plan.MaxProfiles,
		MaxTemplates:        plan.MaxTemplates,
		MaxGalleries:        plan.MaxGalleries,
		MaxImagesPerGallery: plan.MaxImagesPerGallery,
		MaxProducts:         plan.MaxProducts,
		MaxImagesPerProduct: plan.MaxImagesPerProduct,
		Features:            features,
		Limitations:         limitations,
	}
}
