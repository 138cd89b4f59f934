package services

import (
	"context"

	"github.com/google/uuid"

	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	"proforge/pkg/tier"
	"proforge/pkg/utils"
)

type TemplateServiceInterface interface {
	List(ctx context.Context, accountID uuid.UUID) ([]response_models.TemplateResponse, error)
	CheckAccess(ctx context.Context, accountID uuid.UUID, templateID string) (response_models.TemplateResponse, error)
}

type TemplateService struct {
	templateRepo repositories.ITemplateRepository
	subscription SubscriptionServiceInterface
}

func NewTemplateService(templateRepo repositories.ITemplateRepository, subscription SubscriptionServiceInterface) TemplateServiceInterface {
	return &TemplateService{
		templateRepo: templateRepo,
		subscription: subscription,
	}
}

func (t *TemplateService) List(ctx context.Context, accountID uuid.UUID) ([]response_models.TemplateResponse, error) {
	resolution, err := t.subscription.CurrentPlan(ctx, accountID)
	if err != nil {
		return nil, err
	}

	current, err := tier.Parse(resolution.Plan.Tier)
	if err != nil {
		return nil, utils.ErrUnknownTier
	}

	templates, err := t.templateRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.TemplateResponse, 0, len(templates))
	for i := range templates {
		tpl := &templates[i]
		result = append(result, response_models.TemplateResponse{
			ID:           tpl.ID,
			Name:         tpl.Name,
			Slug:         tpl.Slug,
			PreviewImage: tpl.PreviewImage,
			RequiredTier: tpl.RequiredTier,
			Accessible:   tier.Covers(current, tier.Tier(tpl.RequiredTier)),
		})
	}
	return result, nil
}

func (t *TemplateService) CheckAccess(ctx context.Context, accountID uuid.UUID, templateID string) (response_models.TemplateResponse, error) {
	template, err := t.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return response_models.TemplateResponse{}, utils.ErrDatabaseError
	}
	if template == nil {
		return response_models.TemplateResponse{}, utils.ErrTemplateNotFound
	}

	resolution, err := t.subscription.CurrentPlan(ctx, accountID)
	if err != nil {
		return response_models.TemplateResponse{}, err
	}

	current, err := tier.Parse(resolution.Plan.Tier)
	if err != nil {
		return response_models.TemplateResponse{}, utils.ErrUnknownTier
	}

	return response_models.TemplateResponse{
		ID:           template.ID,
		Name:         template.Name,
		Slug:         template.Slug,
		PreviewImage: template.PreviewImage,
		RequiredTier: template.RequiredTier,
		Accessible:   tier.Covers(current, tier.Tier(template.RequiredTier)),
	}, nil
}
