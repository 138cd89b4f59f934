package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proforge/internal/models/db_models"
	"proforge/pkg/utils"
)

type adminFixture struct {
	svc         AdminServiceInterface
	accountRepo *fakeAccountRepo
	productRepo *fakeProductRepo
}

func newAdminFixture() *adminFixture {
	accountRepo := newFakeAccountRepo(newFakeWalletProfileRepo())
	productRepo := newFakeProductRepo()

	svc := NewAdminService(
		accountRepo,
		&fakeTransactionRepo{},
		&fakeSubscriptionRepo{},
		newFakeProfilePageRepo(),
		productRepo,
		&fakePaymentSettingRepo{},
		zap.NewNop(),
	)

	return &adminFixture{svc: svc, accountRepo: accountRepo, productRepo: productRepo}
}

func TestSetProductActiveDeactivates(t *testing.T) {
	f := newAdminFixture()

	product := &db_models.Product{AccountID: uuid.New(), Name: "Logo design", IsActive: true}
	require.NoError(t, f.productRepo.CreateWithQuota(context.Background(), product, 10))

	err := f.svc.SetProductActive(context.Background(), product.ID.String(), false)
	require.NoError(t, err)

	assert.False(t, product.IsActive)
}

func TestSetProductActiveUnknownProduct(t *testing.T) {
	f := newAdminFixture()

	err := f.svc.SetProductActive(context.Background(), uuid.NewString(), false)
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestSetUserActivePersistsFlag(t *testing.T) {
	f := newAdminFixture()

	account := &db_models.Account{Email: "alex@example.com", IsActive: true}
	require.NoError(t, f.accountRepo.CreateWithProfile(
		context.Background(), account, &db_models.WalletProfile{}))

	err := f.svc.SetUserActive(context.Background(), account.ID.String(), false)
	require.NoError(t, err)

	// Persisted only: no login or middleware path reads this back yet.
	assert.False(t, account.IsActive)
}
