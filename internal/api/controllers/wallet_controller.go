package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"proforge/internal/models/request_models"
	"proforge/internal/services"
	"proforge/pkg/utils"
)

type WalletController struct {
	walletService   services.WalletServiceInterface
	referralService services.ReferralServiceInterface
}

func NewWalletController(
	walletService services.WalletServiceInterface,
	referralService services.ReferralServiceInterface,
) *WalletController {
	return &WalletController{
		walletService:   walletService,
		referralService: referralService,
	}
}

// GetWallet godoc
// @Summary Get the account's wallet
// @Tags Wallet
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wallet [get]
func (w *WalletController) GetWallet(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	wallet, err := w.walletService.GetWallet(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wallet, "Wallet fetched successfully")
}

// ListTransactions godoc
// @Summary List the account's wallet transactions
// @Tags Wallet
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wallet/transactions [get]
func (w *WalletController) ListTransactions(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	txns, err := w.walletService.ListTransactions(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "Transactions fetched successfully")
}

// Deposit godoc
// @Summary Claim a manual deposit
// @Description Records a pending deposit; the balance is credited when an admin approves it
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body request_models.DepositRequest true "Deposit payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wallet/deposit [post]
func (w *WalletController) Deposit(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	txn, err := w.walletService.Deposit(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Deposit submitted successfully")
}

// Withdraw godoc
// @Summary Request a withdrawal
// @Description Places an immediate hold on the balance; rejection refunds it
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body request_models.WithdrawRequest true "Withdrawal payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wallet/withdraw [post]
func (w *WalletController) Withdraw(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	txn, err := w.walletService.Withdraw(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Withdrawal submitted successfully")
}

// GetPaymentSettings godoc
// @Summary Get deposit instructions and bounds
// @Tags Wallet
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payment-settings [get]
func (w *WalletController) GetPaymentSettings(c *gin.Context) {
	settings, err := w.walletService.GetPaymentSettings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Payment settings fetched successfully")
}

// ReferralStats godoc
// @Summary Get the account's referral stats
// @Tags Referrals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /referrals/stats [get]
func (w *WalletController) ReferralStats(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := w.referralService.Stats(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Referral stats fetched successfully")
}

// ReferralEarnings godoc
// @Summary List the account's referral earnings
// @Tags Referrals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /referrals/earnings [get]
func (w *WalletController) ReferralEarnings(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	earnings, err := w.referralService.Earnings(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, earnings, "Referral earnings fetched successfully")
}
