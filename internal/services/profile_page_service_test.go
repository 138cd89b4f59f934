package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/pkg/utils"
)

type profileFixture struct {
	svc       ProfilePageServiceInterface
	pageRepo  *fakeProfilePageRepo
	templates *fakeTemplateRepo
	accountID uuid.UUID
	template  *db_models.Template
}

func newProfileFixture(plan *db_models.Plan, templateTier string) *profileFixture {
	subRepo := &fakeSubscriptionRepo{
		active: &db_models.Subscription{Status: db_models.SubStatusActive, Plan: *plan},
	}
	pageRepo := newFakeProfilePageRepo()
	templates := newFakeTemplateRepo()
	template := templates.add(&db_models.Template{
		Name: "Minimal", Slug: "minimal", RequiredTier: templateTier, IsActive: true,
	})

	subscription := NewSubscriptionService(subRepo, newFakePlanRepo())
	return &profileFixture{
		svc:       NewProfilePageService(pageRepo, templates, subscription),
		pageRepo:  pageRepo,
		templates: templates,
		accountID: uuid.New(),
		template:  template,
	}
}

func TestCreateProfilePage(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "premium", MaxProfiles: 3, MaxGalleries: 2, MaxImagesPerGallery: 5}, "free")

	page, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateProfileRequest{
		TemplateID: f.template.ID,
		CustomURL:  "myprofile",
	})
	require.NoError(t, err)

	assert.Equal(t, "myprofile", page.CustomURL)
	assert.True(t, page.IsActive)
	assert.Equal(t, int64(1), f.pageRepo.count)
}

func TestCreateProfilePageCustomURLTaken(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "premium", MaxProfiles: 3, MaxGalleries: 2, MaxImagesPerGallery: 5}, "free")
	f.pageRepo.taken["myprofile"] = true

	_, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateProfileRequest{
		TemplateID: f.template.ID,
		CustomURL:  "myprofile",
	})
	assert.ErrorIs(t, err, utils.ErrCustomURLTaken)
}

func TestCreateProfilePageTemplateTierLocked(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "free", MaxProfiles: 1, MaxGalleries: 1, MaxImagesPerGallery: 3}, "premium")

	_, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateProfileRequest{
		TemplateID: f.template.ID,
		CustomURL:  "myprofile",
	})
	assert.ErrorIs(t, err, utils.ErrTemplateTierLocked)
}

func TestCreateProfilePageQuotaExceeded(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "free", MaxProfiles: 1, MaxGalleries: 1, MaxImagesPerGallery: 3}, "free")
	f.pageRepo.count = 1

	_, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateProfileRequest{
		TemplateID: f.template.ID,
		CustomURL:  "second",
	})
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)
}

func TestCreateProfilePageTooManyGalleries(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "free", MaxProfiles: 1, MaxGalleries: 1, MaxImagesPerGallery: 3}, "free")

	data, _ := json.Marshal(map[string]interface{}{
		"galleries": []map[string]interface{}{
			{"title": "one", "images": []string{}},
			{"title": "two", "images": []string{}},
		},
	})

	_, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateProfileRequest{
		TemplateID:  f.template.ID,
		CustomURL:   "myprofile",
		ProfileData: data,
	})
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)
}

func TestCreateProfilePageTooManyGalleryImages(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "free", MaxProfiles: 1, MaxGalleries: 1, MaxImagesPerGallery: 2}, "free")

	data, _ := json.Marshal(map[string]interface{}{
		"galleries": []map[string]interface{}{
			{"title": "one", "images": []string{"a.png", "b.png", "c.png"}},
		},
	})

	_, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateProfileRequest{
		TemplateID:  f.template.ID,
		CustomURL:   "myprofile",
		ProfileData: data,
	})
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)
}

func TestUpdateProfilePageOwnershipEnforced(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "premium", MaxProfiles: 3, MaxGalleries: 2, MaxImagesPerGallery: 5}, "free")

	page, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateProfileRequest{
		TemplateID: f.template.ID,
		CustomURL:  "myprofile",
	})
	require.NoError(t, err)

	otherAccount := uuid.New()
	_, err = f.svc.Update(context.Background(), otherAccount, page.ID.String(), request_models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestPublicByURLBumpsViewCount(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "premium", MaxProfiles: 3, MaxGalleries: 2, MaxImagesPerGallery: 5}, "free")

	created, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateProfileRequest{
		TemplateID: f.template.ID,
		CustomURL:  "myprofile",
	})
	require.NoError(t, err)

	public, err := f.svc.PublicByURL(context.Background(), "myprofile")
	require.NoError(t, err)
	assert.Equal(t, int64(1), public.ViewCount)

	public, err = f.svc.PublicByURL(context.Background(), "myprofile")
	require.NoError(t, err)
	assert.Equal(t, int64(2), public.ViewCount)

	_ = created
}

func TestPublicByURLUnknownIs404(t *testing.T) {
	f := newProfileFixture(&db_models.Plan{Tier: "free", MaxProfiles: 1, MaxGalleries: 1, MaxImagesPerGallery: 3}, "free")

	_, err := f.svc.PublicByURL(context.Background(), "nobody")
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}
