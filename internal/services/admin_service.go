package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	"proforge/pkg/utils"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.AccountResponse, error)

	// SetUserActive persists the flag but nothing reads it back to block
	// access. Intentional: flipping it must not lock anyone out until a
	// deactivation policy is decided.
	SetUserActive(ctx context.Context, userID string, active bool) error

	// SetProductActive is the moderation path: an admin can pull a
	// product without touching the owner's data.
	SetProductActive(ctx context.Context, productID string, active bool) error

	ListTransactions(ctx context.Context, status string) ([]response_models.TransactionResponse, error)
	UpdatePaymentSettings(ctx context.Context, request request_models.UpdatePaymentSettingsRequest) (response_models.PaymentSettingsResponse, error)
	DashboardStats(ctx context.Context, rangeStart, rangeEnd int64) (response_models.DashboardStatsResponse, error)
}

type AdminService struct {
	accountRepo  repositories.AccountRepository
	txnRepo      repositories.IWalletTransactionRepository
	subRepo      repositories.ISubscriptionRepository
	pageRepo     repositories.IProfilePageRepository
	productRepo  repositories.IProductRepository
	settingsRepo repositories.IPaymentSettingRepository
	logger       *zap.Logger
}

func NewAdminService(
	accountRepo repositories.AccountRepository,
	txnRepo repositories.IWalletTransactionRepository,
	subRepo repositories.ISubscriptionRepository,
	pageRepo repositories.IProfilePageRepository,
	productRepo repositories.IProductRepository,
	settingsRepo repositories.IPaymentSettingRepository,
	logger *zap.Logger,
) AdminServiceInterface {
	return &AdminService{
		accountRepo:  accountRepo,
		txnRepo:      txnRepo,
		subRepo:      subRepo,
		pageRepo:     pageRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (a *AdminService) ListUsers(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		result = append(result, AccountToResponse(&accounts[i]))
	}
	return result, nil
}

func (a *AdminService) SetUserActive(ctx context.Context, userID string, active bool) error {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := a.accountRepo.SetActive(ctx, userID, active); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("user active flag updated",
		zap.String("user_id", userID), zap.Bool("is_active", active))
	return nil
}

func (a *AdminService) SetProductActive(ctx context.Context, productID string, active bool) error {
	product, err := a.productRepo.FindByID(ctx, productID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.ErrProductNotFound
	}

	if err := a.productRepo.SetActive(ctx, productID, active); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("product active flag updated",
		zap.String("product_id", productID), zap.Bool("is_active", active))
	return nil
}

func (a *AdminService) ListTransactions(ctx context.Context, status string) ([]response_models.TransactionResponse, error) {
	if status == "" {
		status = string(db_models.TxnStatusPending)
	}

	txns, err := a.txnRepo.FindByStatus(ctx, db_models.TxnStatus(status))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.TransactionResponse, 0, len(txns))
	for i := range txns {
		result = append(result, TxnToResponse(&txns[i]))
	}
	return result, nil
}

func (a *AdminService) UpdatePaymentSettings(ctx context.Context, request request_models.UpdatePaymentSettingsRequest) (response_models.PaymentSettingsResponse, error) {
	setting := &db_models.PaymentSetting{
		Instructions:    request.Instructions,
		MinDepositMinor: request.MinDepositMinor,
		MaxDepositMinor: request.MaxDepositMinor,
		Currency:        request.Currency,
	}
	if err := a.settingsRepo.Upsert(ctx, setting); err != nil {
		return response_models.PaymentSettingsResponse{}, utils.ErrDatabaseError
	}

	return response_models.PaymentSettingsResponse{
		Instructions:    setting.Instructions,
		MinDepositMinor: setting.MinDepositMinor,
		MaxDepositMinor: setting.MaxDepositMinor,
		Currency:        setting.Currency,
	}, nil
}

func (a *AdminService) DashboardStats(ctx context.Context, rangeStart, rangeEnd int64) (response_models.DashboardStatsResponse, error) {
	if rangeEnd == 0 {
		rangeEnd = time.Now().Unix()
	}
	if rangeStart == 0 {
		rangeStart = rangeEnd - 30*24*3600
	}

	totalUsers, err := a.accountRepo.Count(ctx)
	if err != nil {
		return response_models.DashboardStatsResponse{}, utils.ErrDatabaseError
	}
	newUsers, err := a.accountRepo.CountCreatedBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		return response_models.DashboardStatsResponse{}, utils.ErrDatabaseError
	}
	activeSubs, err := a.subRepo.CountActive(ctx)
	if err != nil {
		return response_models.DashboardStatsResponse{}, utils.ErrDatabaseError
	}
	pendingTxns, err := a.txnRepo.CountByStatus(ctx, db_models.TxnStatusPending)
	if err != nil {
		return response_models.DashboardStatsResponse{}, utils.ErrDatabaseError
	}
	revenue, err := a.txnRepo.SumApprovedBetween(ctx, db_models.TxnSubscription, rangeStart, rangeEnd)
	if err != nil {
		return response_models.DashboardStatsResponse{}, utils.ErrDatabaseError
	}
	deposits, err := a.txnRepo.SumApprovedBetween(ctx, db_models.TxnDeposit, rangeStart, rangeEnd)
	if err != nil {
		return response_models.DashboardStatsResponse{}, utils.ErrDatabaseError
	}
	profiles, err := a.pageRepo.CountCreatedBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		return response_models.DashboardStatsResponse{}, utils.ErrDatabaseError
	}

	return response_models.DashboardStatsResponse{
		TotalUsers:          totalUsers,
		NewUsers:            newUsers,
		ActiveSubscriptions: activeSubs,
		PendingTransactions: pendingTxns,
		RevenueMinor:        revenue,
		DepositVolumeMinor:  deposits,
		ProfilesCreated:     profiles,
		RangeStart:          rangeStart,
		RangeEnd:            rangeEnd,
	}, nil
}
