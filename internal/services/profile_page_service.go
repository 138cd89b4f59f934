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
	"proforge/pkg/tier"
	"proforge/pkg/utils"
)

type ProfilePageServiceInterface interface {
	Create(ctx context.Context, accountID uuid.UUID, request request_models.CreateProfileRequest) (response_models.ProfilePageResponse, error)
	Update(ctx context.Context, accountID uuid.UUID, pageID string, request request_models.UpdateProfileRequest) (response_models.ProfilePageResponse, error)
	Delete(ctx context.Context, accountID uuid.UUID, pageID string) error
	GetByID(ctx context.Context, accountID uuid.UUID, pageID string) (response_models.ProfilePageResponse, error)
	ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.ProfilePageResponse, error)

	// PublicByURL resolves an active page for the public /u/:customURL
	// route and bumps its view counter.
	PublicByURL(ctx context.Context, customURL string) (response_models.PublicProfileResponse, error)
}

type ProfilePageService struct {
	pageRepo     repositories.IProfilePageRepository
	templateRepo repositories.ITemplateRepository
	subscription SubscriptionServiceInterface
}

func NewProfilePageService(
	pageRepo repositories.IProfilePageRepository,
	templateRepo repositories.ITemplateRepository,
	subscription SubscriptionServiceInterface,
) ProfilePageServiceInterface {
	return &ProfilePageService{
		pageRepo:     pageRepo,
		templateRepo: templateRepo,
		subscription: subscription,
	}
}

func (p *ProfilePageService) Create(ctx context.Context, accountID uuid.UUID, request request_models.CreateProfileRequest) (response_models.ProfilePageResponse, error) {
	resolution, err := p.subscription.CurrentPlan(ctx, accountID)
	if err != nil {
		return response_models.ProfilePageResponse{}, err
	}
	plan := resolution.Plan

	if err := p.checkTemplateAccess(ctx, plan, request.TemplateID.String()); err != nil {
		return response_models.ProfilePageResponse{}, err
	}

	taken, err := p.pageRepo.CustomURLTaken(ctx, request.CustomURL, uuid.Nil)
	if err != nil {
		return response_models.ProfilePageResponse{}, utils.ErrDatabaseError
	}
	if taken {
		return response_models.ProfilePageResponse{}, utils.ErrCustomURLTaken
	}

	data := request.ProfileData
	if len(data) == 0 {
		data = json.RawMessage(`{}`)
	}
	if err := validateProfileData(data, plan); err != nil {
		return response_models.ProfilePageResponse{}, err
	}

	page := &db_models.ProfilePage{
		AccountID:   accountID,
		TemplateID:  request.TemplateID,
		CustomURL:   request.CustomURL,
		ProfileData: []byte(data),
		IsActive:    true,
	}

	// The unique index on custom_url backstops the pre-check above; the
	// count happens inside the same transaction as the insert.
	if err := p.pageRepo.CreateWithQuota(ctx, page, plan.MaxProfiles); err != nil {
		if err == utils.ErrQuotaExceeded {
			return response_models.ProfilePageResponse{}, err
		}
		return response_models.ProfilePageResponse{}, utils.ErrDatabaseError
	}

	return pageToResponse(page), nil
}

func (p *ProfilePageService) Update(ctx context.Context, accountID uuid.UUID, pageID string, request request_models.UpdateProfileRequest) (response_models.ProfilePageResponse, error) {
	page, err := p.pageRepo.FindByID(ctx, pageID)
	if err != nil {
		return response_models.ProfilePageResponse{}, utils.ErrDatabaseError
	}
	if page == nil || page.AccountID != accountID {
		return response_models.ProfilePageResponse{}, utils.ErrProfileNotFound
	}

	resolution, err := p.subscription.CurrentPlan(ctx, accountID)
	if err != nil {
		return response_models.ProfilePageResponse{}, err
	}
	plan := resolution.Plan

	if request.TemplateID != nil {
		if err := p.checkTemplateAccess(ctx, plan, request.TemplateID.String()); err != nil {
			return response_models.ProfilePageResponse{}, err
		}
		page.TemplateID = *request.TemplateID
	}

	if request.CustomURL != nil && *request.CustomURL != page.CustomURL {
		taken, err := p.pageRepo.CustomURLTaken(ctx, *request.CustomURL, page.ID)
		if err != nil {
			return response_models.ProfilePageResponse{}, utils.ErrDatabaseError
		}
		if taken {
			return response_models.ProfilePageResponse{}, utils.ErrCustomURLTaken
		}
		page.CustomURL = *request.CustomURL
	}

	if len(request.ProfileData) > 0 {
		if err := validateProfileData(request.ProfileData, plan); err != nil {
			return response_models.ProfilePageResponse{}, err
		}
		page.ProfileData = []byte(request.ProfileData)
	}

	if request.IsActive != nil {
		page.IsActive = *request.IsActive
	}

	if err := p.pageRepo.Update(ctx, page); err != nil {
		return response_models.ProfilePageResponse{}, utils.ErrDatabaseError
	}

	return pageToResponse(page), nil
}

func (p *ProfilePageService) Delete(ctx context.Context, accountID uuid.UUID, pageID string) error {
	page, err := p.pageRepo.FindByID(ctx, pageID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if page == nil || page.AccountID != accountID {
		return utils.ErrProfileNotFound
	}

	if err := p.pageRepo.Delete(ctx, pageID, accountID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *ProfilePageService) GetByID(ctx context.Context, accountID uuid.UUID, pageID string) (response_models.ProfilePageResponse, error) {
	page, err := p.pageRepo.FindByID(ctx, pageID)
	if err != nil {
		return response_models.ProfilePageResponse{}, utils.ErrDatabaseError
	}
	if page == nil || page.AccountID != accountID {
		return response_models.ProfilePageResponse{}, utils.ErrProfileNotFound
	}

	return pageToResponse(page), nil
}

func (p *ProfilePageService) ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.ProfilePageResponse, error) {
	pages, err := p.pageRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.ProfilePageResponse, 0, len(pages))
	for i := range pages {
		result = append(result, pageToResponse(&pages[i]))
	}
	return result, nil
}

func (p *ProfilePageService) PublicByURL(ctx context.Context, customURL string) (response_models.PublicProfileResponse, error) {
	page, err := p.pageRepo.FindActiveByCustomURL(ctx, customURL)
	if err != nil {
		return response_models.PublicProfileResponse{}, utils.ErrDatabaseError
	}
	if page == nil {
		return response_models.PublicProfileResponse{}, utils.ErrProfileNotFound
	}

	// Increment-and-read would need another round trip; serve the count
	// as of this view instead.
	if err := p.pageRepo.IncrementViews(ctx, page.ID); err != nil {
		return response_models.PublicProfileResponse{}, utils.ErrDatabaseError
	}

	return response_models.PublicProfileResponse{
		CustomURL:    page.CustomURL,
		TemplateSlug: page.Template.Slug,
		ProfileData:  json.RawMessage(page.ProfileData),
		ViewCount:    page.ViewCount + 1,
	}, nil
}

func (p *ProfilePageService) checkTemplateAccess(ctx context.Context, plan *db_models.Plan, templateID string) error {
	template, err := p.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if template == nil {
		return utils.ErrTemplateNotFound
	}

	current, err := tier.Parse(plan.Tier)
	if err != nil {
		return utils.ErrUnknownTier
	}
	if !tier.Covers(current, tier.Tier(template.RequiredTier)) {
		return utils.ErrTemplateTierLocked
	}
	return nil
}

type profileGallery struct {
	Title  string   `json:"title"`
	Images []string `json:"images"`
}

// validateProfileData enforces the plan's gallery limits on the page
// payload. Everything else in profile_data is free-form.
func validateProfileData(data json.RawMessage, plan *db_models.Plan) error {
	var payload struct {
		Galleries []profileGallery `json:"galleries"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: profile_data is not valid JSON", utils.ErrUnknownResource)
	}

	if len(payload.Galleries) > plan.MaxGalleries {
		return fmt.Errorf("%w: plan allows %d galleries", utils.ErrQuotaExceeded, plan.MaxGalleries)
	}
	for _, gallery := range payload.Galleries {
		if len(gallery.Images) > plan.MaxImagesPerGallery {
			return fmt.Errorf("%w: plan allows %d images per gallery", utils.ErrQuotaExceeded, plan.MaxImagesPerGallery)
		}
	}
	return nil
}

func pageToResponse(page *db_models.ProfilePage) response_models.ProfilePageResponse {
	return response_models.ProfilePageResponse{
		ID:          page.ID,
		TemplateID:  page.TemplateID,
		CustomURL:   page.CustomURL,
		ProfileData: json.RawMessage(page.ProfileData),
		IsActive:    page.IsActive,
		ViewCount:   page.ViewCount,
		CreatedAt:   page.CreatedAt,
	}
}
