package services

import (
	"context"

	"github.com/google/uuid"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	"proforge/pkg/utils"
)

type WalletServiceInterface interface {
	GetWallet(ctx context.Context, accountID uuid.UUID) (response_models.WalletResponse, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID) ([]response_models.TransactionResponse, error)
	Deposit(ctx context.Context, accountID uuid.UUID, request request_models.DepositRequest) (response_models.TransactionResponse, error)
	Withdraw(ctx context.Context, accountID uuid.UUID, request request_models.WithdrawRequest) (response_models.TransactionResponse, error)
	GetPaymentSettings(ctx context.Context) (response_models.PaymentSettingsResponse, error)
}

type WalletService struct {
	profileRepo  repositories.WalletProfileRepository
	txnRepo      repositories.IWalletTransactionRepository
	settingsRepo repositories.IPaymentSettingRepository
}

func NewWalletService(
	profileRepo repositories.WalletProfileRepository,
	txnRepo repositories.IWalletTransactionRepository,
	settingsRepo repositories.IPaymentSettingRepository,
) WalletServiceInterface {
	return &WalletService{
		profileRepo:  profileRepo,
		txnRepo:      txnRepo,
		settingsRepo: settingsRepo,
	}
}

func (w *WalletService) GetWallet(ctx context.Context, accountID uuid.UUID) (response_models.WalletResponse, error) {
	profile, err := w.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return response_models.WalletResponse{}, utils.ErrDatabaseError
	}
	if profile == nil {
		return response_models.WalletResponse{}, utils.ErrAccountNotFound
	}

	return response_models.WalletResponse{
		BalanceMinor:       profile.WalletBalanceMinor,
		TotalEarningsMinor: profile.TotalEarningsMinor,
		ReferralCode:       profile.ReferralCode,
	}, nil
}

func (w *WalletService) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]response_models.TransactionResponse, error) {
	txns, err := w.txnRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.TransactionResponse, 0, len(txns))
	for i := range txns {
		result = append(result, TxnToResponse(&txns[i]))
	}
	return result, nil
}

// Deposit records a manual-payment claim; nothing is credited until an
// admin approves it.
func (w *WalletService) Deposit(ctx context.Context, accountID uuid.UUID, request request_models.DepositRequest) (response_models.TransactionResponse, error) {
	settings, err := w.settingsRepo.Get(ctx)
	if err != nil {
		return response_models.TransactionResponse{}, utils.ErrDatabaseError
	}

	currency := "USD"
	if settings != nil {
		currency = settings.Currency
		if request.AmountMinor < settings.MinDepositMinor {
			return response_models.TransactionResponse{}, utils.ErrAmountOutOfBounds
		}
		if settings.MaxDepositMinor > 0 && request.AmountMinor > settings.MaxDepositMinor {
			return response_models.TransactionResponse{}, utils.ErrAmountOutOfBounds
		}
	}

	txn := &db_models.WalletTransaction{
		AccountID:   accountID,
		Type:        db_models.TxnDeposit,
		AmountMinor: request.AmountMinor,
		Currency:    currency,
		Status:      db_models.TxnStatusPending,
		Method:      db_models.MethodManual,
		Reference:   request.Reference,
	}
	if err := w.txnRepo.Insert(ctx, txn); err != nil {
		return response_models.TransactionResponse{}, utils.ErrDatabaseError
	}

	return TxnToResponse(txn), nil
}

// Withdraw places an immediate hold on the balance; rejection refunds
// it. The debit is a conditional update, so a short balance loses.
func (w *WalletService) Withdraw(ctx context.Context, accountID uuid.UUID, request request_models.WithdrawRequest) (response_models.TransactionResponse, error) {
	settings, err := w.settingsRepo.Get(ctx)
	if err != nil {
		return response_models.TransactionResponse{}, utils.ErrDatabaseError
	}

	currency := "USD"
	if settings != nil {
		currency = settings.Currency
	}

	txn := &db_models.WalletTransaction{
		AccountID:   accountID,
		Type:        db_models.TxnWithdrawal,
		AmountMinor: request.AmountMinor,
		Currency:    currency,
		Status:      db_models.TxnStatusPending,
		Method:      db_models.MethodWallet,
		Reference:   request.Reference,
	}
	if err := w.txnRepo.InsertWithdrawalHold(ctx, txn); err != nil {
		if err == utils.ErrInsufficientBalance {
			return response_models.TransactionResponse{}, err
		}
		return response_models.TransactionResponse{}, utils.ErrDatabaseError
	}

	return TxnToResponse(txn), nil
}

func (w *WalletService) GetPaymentSettings(ctx context.Context) (response_models.PaymentSettingsResponse, error) {
	settings, err := w.settingsRepo.Get(ctx)
	if err != nil {
		return response_models.PaymentSettingsResponse{}, utils.ErrDatabaseError
	}
	if settings == nil {
		return response_models.PaymentSettingsResponse{}, utils.ErrRecordNotFound
	}

	return response_models.PaymentSettingsResponse{
		Instructions:    settings.Instructions,
		MinDepositMinor: settings.MinDepositMinor,
		MaxDepositMinor: settings.MaxDepositMinor,
		Currency:        settings.Currency,
	}, nil
}

func TxnToResponse(txn *db_models.WalletTransaction) response_models.TransactionResponse {
	return response_models.TransactionResponse{
		ID:          txn.ID,
		Type:        string(txn.Type),
		AmountMinor: txn.AmountMinor,
		Currency:    txn.Currency,
		Status:      string(txn.Status),
		Method:      string(txn.Method),
		Reference:   txn.Reference,
		AdminNote:   txn.AdminNote,
		ProcessedAt: txn.ProcessedAt,
		CreatedAt:   txn.CreatedAt,
	}
}
