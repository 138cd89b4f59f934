package controllers

import (
	"github.com/gin-gonic/gin"

	"proforge/internal/services"
	"proforge/pkg/utils"
)

// PublicController serves the unauthenticated surface: published
// profile pages under their custom URLs.
type PublicController struct {
	profileService services.ProfilePageServiceInterface
}

func NewPublicController(profileService services.ProfilePageServiceInterface) *PublicController {
	return &PublicController{
		profileService: profileService,
	}
}

// ViewProfile godoc
// @Summary View a published profile page
// @Description Resolves an active page by its custom URL and counts the view
// @Tags Public
// @Produce json
// @Param customURL path string true "Custom URL"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /u/{customURL} [get]
func (p *PublicController) ViewProfile(c *gin.Context) {
	page, err := p.profileService.PublicByURL(c.Request.Context(), c.Param("customURL"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Profile fetched successfully")
}
