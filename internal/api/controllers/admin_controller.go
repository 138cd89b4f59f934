package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"proforge/internal/models/request_models"
	"proforge/internal/services"
	"proforge/pkg/utils"
)

type AdminController struct {
	adminService      services.AdminServiceInterface
	settlementService services.SettlementServiceInterface
}

func NewAdminController(
	adminService services.AdminServiceInterface,
	settlementService services.SettlementServiceInterface,
) *AdminController {
	return &AdminController{
		adminService:      adminService,
		settlementService: settlementService,
	}
}

// ListUsers godoc
// @Summary List all users
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// SetUserActive godoc
// @Summary Set a user's active flag
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.SetUserActiveRequest true "Active flag payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id}/active [put]
func (a *AdminController) SetUserActive(c *gin.Context) {
	var req request_models.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.SetUserActive(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User updated successfully")
}

// SetProductActive godoc
// @Summary Set a product's active flag (moderation)
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request_models.SetProductActiveRequest true "Active flag payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/products/{id}/active [put]
func (a *AdminController) SetProductActive(c *gin.Context) {
	var req request_models.SetProductActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.SetProductActive(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product updated successfully")
}

// ListTransactions godoc
// @Summary List transactions by status
// @Tags Admin
// @Produce json
// @Param status query string false "Transaction status (defaults to pending)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/transactions [get]
func (a *AdminController) ListTransactions(c *gin.Context) {
	txns, err := a.adminService.ListTransactions(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "Transactions fetched successfully")
}

// ApproveTransaction godoc
// @Summary Approve a pending transaction
// @Description Credits deposits, activates paid subscriptions and fans out referral commissions
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body request_models.ReviewTransactionRequest false "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/transactions/{id}/approve [post]
func (a *AdminController) ApproveTransaction(c *gin.Context) {
	adminID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.ReviewTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.settlementService.Approve(c.Request.Context(), c.Param("id"), adminID, req.AdminNote); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Transaction approved successfully")
}

// RejectTransaction godoc
// @Summary Reject a pending transaction
// @Description Refunds wallet holds and marks related subscriptions rejected
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body request_models.ReviewTransactionRequest false "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/transactions/{id}/reject [post]
func (a *AdminController) RejectTransaction(c *gin.Context) {
	adminID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.ReviewTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.settlementService.Reject(c.Request.Context(), c.Param("id"), adminID, req.AdminNote); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Transaction rejected successfully")
}

// UpdatePaymentSettings godoc
// @Summary Update deposit instructions and bounds
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePaymentSettingsRequest true "Payment settings payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/payment-settings [put]
func (a *AdminController) UpdatePaymentSettings(c *gin.Context) {
	var req request_models.UpdatePaymentSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	settings, err := a.adminService.UpdatePaymentSettings(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Payment settings updated successfully")
}

// Dashboard godoc
// @Summary Dashboard statistics
// @Description Totals plus activity over the requested unix-seconds range (defaults to the last 30 days)
// @Tags Admin
// @Produce json
// @Param range_start query int false "Range start (unix seconds)"
// @Param range_end query int false "Range end (unix seconds)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard/stats [get]
func (a *AdminController) Dashboard(c *gin.Context) {
	rangeStart, _ := strconv.ParseInt(c.Query("range_start"), 10, 64)
	rangeEnd, _ := strconv.ParseInt(c.Query("range_end"), 10, 64)

	stats, err := a.adminService.DashboardStats(c.Request.Context(), rangeStart, rangeEnd)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Dashboard stats fetched successfully")
}
