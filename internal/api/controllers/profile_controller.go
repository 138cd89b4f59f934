package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"proforge/internal/models/request_models"
	"proforge/internal/services"
	"proforge/pkg/utils"
)

type ProfileController struct {
	profileService  services.ProfilePageServiceInterface
	templateService services.TemplateServiceInterface
}

func NewProfileController(
	profileService services.ProfilePageServiceInterface,
	templateService services.TemplateServiceInterface,
) *ProfileController {
	return &ProfileController{
		profileService:  profileService,
		templateService: templateService,
	}
}

// Create godoc
// @Summary Create a profile page
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.CreateProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles [post]
func (p *ProfileController) Create(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	page, err := p.profileService.Create(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Profile created successfully")
}

// Update godoc
// @Summary Update a profile page
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body request_models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/{id} [put]
func (p *ProfileController) Update(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	page, err := p.profileService.Update(c.Request.Context(), accountID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Profile updated successfully")
}

// Delete godoc
// @Summary Delete a profile page
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/{id} [delete]
func (p *ProfileController) Delete(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := p.profileService.Delete(c.Request.Context(), accountID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile deleted successfully")
}

// Get godoc
// @Summary Get one of the account's profile pages
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/{id} [get]
func (p *ProfileController) Get(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, err := p.profileService.GetByID(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Profile fetched successfully")
}

// ListMine godoc
// @Summary List the account's profile pages
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles [get]
func (p *ProfileController) ListMine(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	pages, err := p.profileService.ListMine(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pages, "Profiles fetched successfully")
}

// ListTemplates godoc
// @Summary List templates with accessibility for the current tier
// @Tags Templates
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /templates [get]
func (p *ProfileController) ListTemplates(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	templates, err := p.templateService.List(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "Templates fetched successfully")
}

// CheckTemplateAccess godoc
// @Summary Check whether the current tier can use a template
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /templates/{id}/access [get]
func (p *ProfileController) CheckTemplateAccess(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	template, err := p.templateService.CheckAccess(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template access evaluated successfully")
}
