package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/pkg/utils"
)

func newWalletFixture(balance int64, setting *db_models.PaymentSetting) (WalletServiceInterface, *fakeWalletProfileRepo, *fakeTransactionRepo) {
	profileRepo := newFakeWalletProfileRepo()
	txnRepo := &fakeTransactionRepo{balance: balance}
	settingsRepo := &fakePaymentSettingRepo{setting: setting}
	return NewWalletService(profileRepo, txnRepo, settingsRepo), profileRepo, txnRepo
}

func TestDepositWithinBounds(t *testing.T) {
	svc, _, txnRepo := newWalletFixture(0, &db_models.PaymentSetting{
		MinDepositMinor: 100, MaxDepositMinor: 100000, Currency: "EUR",
	})

	txn, err := svc.Deposit(context.Background(), uuid.New(), request_models.DepositRequest{
		AmountMinor: 5000, Reference: "bank-slip-42",
	})
	require.NoError(t, err)

	assert.Equal(t, string(db_models.TxnStatusPending), txn.Status)
	assert.Equal(t, string(db_models.MethodManual), txn.Method)
	assert.Equal(t, "EUR", txn.Currency)
	require.Len(t, txnRepo.txns, 1)
}

func TestDepositBelowMinimum(t *testing.T) {
	svc, _, txnRepo := newWalletFixture(0, &db_models.PaymentSetting{
		MinDepositMinor: 1000, MaxDepositMinor: 100000, Currency: "USD",
	})

	_, err := svc.Deposit(context.Background(), uuid.New(), request_models.DepositRequest{AmountMinor: 500})
	assert.ErrorIs(t, err, utils.ErrAmountOutOfBounds)
	assert.Empty(t, txnRepo.txns)
}

func TestDepositAboveMaximum(t *testing.T) {
	svc, _, _ := newWalletFixture(0, &db_models.PaymentSetting{
		MinDepositMinor: 100, MaxDepositMinor: 10000, Currency: "USD",
	})

	_, err := svc.Deposit(context.Background(), uuid.New(), request_models.DepositRequest{AmountMinor: 20000})
	assert.ErrorIs(t, err, utils.ErrAmountOutOfBounds)
}

func TestDepositWithoutSettingsRowIsUnbounded(t *testing.T) {
	svc, _, _ := newWalletFixture(0, nil)

	txn, err := svc.Deposit(context.Background(), uuid.New(), request_models.DepositRequest{AmountMinor: 1})
	require.NoError(t, err)
	assert.Equal(t, "USD", txn.Currency)
}

func TestWithdrawPlacesHold(t *testing.T) {
	svc, _, txnRepo := newWalletFixture(10000, nil)

	txn, err := svc.Withdraw(context.Background(), uuid.New(), request_models.WithdrawRequest{AmountMinor: 4000})
	require.NoError(t, err)

	assert.Equal(t, string(db_models.TxnStatusPending), txn.Status)
	assert.Equal(t, int64(6000), txnRepo.balance)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	svc, _, txnRepo := newWalletFixture(1000, nil)

	_, err := svc.Withdraw(context.Background(), uuid.New(), request_models.WithdrawRequest{AmountMinor: 4000})
	assert.ErrorIs(t, err, utils.ErrInsufficientBalance)

	assert.Equal(t, int64(1000), txnRepo.balance)
	assert.Empty(t, txnRepo.txns)
}

func TestGetWalletUnknownAccount(t *testing.T) {
	svc, _, _ := newWalletFixture(0, nil)

	_, err := svc.GetWallet(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
