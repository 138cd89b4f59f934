package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	mem "proforge/pkg/memcache"
	"proforge/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail  map[string]*db_models.Account
	profiles *fakeWalletProfileRepo

	failProfileInsert bool
}

func newFakeAccountRepo(profiles *fakeWalletProfileRepo) *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail:  map[string]*db_models.Account{},
		profiles: profiles,
	}
}

func (f *fakeAccountRepo) CreateWithProfile(_ context.Context, account *db_models.Account, profile *db_models.WalletProfile) error {
	if f.failProfileInsert {
		// Both rows roll back together, like the gorm transaction.
		return errors.New("wallet_profiles insert failed")
	}

	account.ID = uuid.New()
	f.byEmail[account.Email] = account

	profile.ID = uuid.New()
	profile.AccountID = account.ID
	f.profiles.profiles[account.ID] = profile

	if profile.ReferrerID != nil {
		f.profiles.IncrementReferralCount(*profile.ReferrerID)
	}
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			a.PasswordHash = passwordHash
		}
	}
	return nil
}

func (f *fakeAccountRepo) SetActive(_ context.Context, id string, active bool) error {
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			a.IsActive = active
		}
	}
	return nil
}

func (f *fakeAccountRepo) ListAll(_ context.Context) ([]db_models.Account, error) {
	var result []db_models.Account
	for _, a := range f.byEmail {
		result = append(result, *a)
	}
	return result, nil
}

func (f *fakeAccountRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byEmail)), nil
}

func (f *fakeAccountRepo) CountCreatedBetween(_ context.Context, _, _ int64) (int64, error) {
	return int64(len(f.byEmail)), nil
}

type fakeMailService struct {
	resetMails []string
}

func (f *fakeMailService) SendMailToNotifyUser(_, _, _, _, _ string) error { return nil }

func (f *fakeMailService) SendMailToResetPassword(email, _ string) error {
	f.resetMails = append(f.resetMails, email)
	return nil
}

type fakeRevoker struct {
	keys map[string]time.Duration
}

func (f *fakeRevoker) Set(_ context.Context, key string, _ interface{}, ttl time.Duration) error {
	if f.keys == nil {
		f.keys = map[string]time.Duration{}
	}
	f.keys[key] = ttl
	return nil
}

type accountFixture struct {
	svc         AccountServiceInterface
	accountRepo *fakeAccountRepo
	profileRepo *fakeWalletProfileRepo
	mail        *fakeMailService
	revoker     *fakeRevoker
}

func newAccountFixture() *accountFixture {
	profileRepo := newFakeWalletProfileRepo()
	accountRepo := newFakeAccountRepo(profileRepo)
	mail := &fakeMailService{}
	revoker := &fakeRevoker{}

	planRepo := newFakePlanRepo()
	planRepo.free = &db_models.Plan{Code: "free", Tier: "free", IsActive: true}
	subscription := NewSubscriptionService(&fakeSubscriptionRepo{}, planRepo)

	svc := NewAccountService(
		accountRepo, profileRepo, subscription, mail,
		mem.NewResetTokens(),
		utils.NewTokenIssuer("test-secret", time.Hour),
		revoker, zap.NewNop(),
	)

	return &accountFixture{
		svc:         svc,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		mail:        mail,
		revoker:     revoker,
	}
}

func TestCreateAccountIssuesReferralCode(t *testing.T) {
	f := newAccountFixture()

	err := f.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	account := f.accountRepo.byEmail["alex@example.com"]
	require.NotNil(t, account)

	profile, err := f.profileRepo.FindByAccountID(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Len(t, profile.ReferralCode, 8)
	assert.Nil(t, profile.ReferrerID)
}

func TestCreateAccountWithValidReferralCode(t *testing.T) {
	f := newAccountFixture()

	referrerAccount := uuid.New()
	_ = f.profileRepo.Insert(context.Background(), &db_models.WalletProfile{
		AccountID: referrerAccount, ReferralCode: "FRIEND99",
	})

	err := f.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Blake", Email: "blake@example.com", Password: "secret123",
		ReferralCode: "FRIEND99",
	})
	require.NoError(t, err)

	account := f.accountRepo.byEmail["blake@example.com"]
	profile, _ := f.profileRepo.FindByAccountID(context.Background(), account.ID)
	require.NotNil(t, profile.ReferrerID)
	assert.Equal(t, referrerAccount, *profile.ReferrerID)
	assert.Contains(t, f.profileRepo.referralBumped, referrerAccount)
}

func TestCreateAccountWithBadReferralCodeAbortsSignup(t *testing.T) {
	f := newAccountFixture()

	err := f.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Casey", Email: "casey@example.com", Password: "secret123",
		ReferralCode: "NOSUCH01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidReferralCode)
	assert.Nil(t, f.accountRepo.byEmail["casey@example.com"])
}

func TestCreateAccountAllOrNothing(t *testing.T) {
	f := newAccountFixture()
	f.accountRepo.failProfileInsert = true

	err := f.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Dana", Email: "dana@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	// No orphan account: the email stays free for a retry.
	assert.Nil(t, f.accountRepo.byEmail["dana@example.com"])
	assert.Empty(t, f.profileRepo.profiles)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	f := newAccountFixture()

	req := request_models.SignUpRequest{
		DisplayName: "Alex", Email: "alex@example.com", Password: "secret123",
	}
	require.NoError(t, f.svc.CreateAccount(context.Background(), req))

	err := f.svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginResolvesTier(t *testing.T) {
	f := newAccountFixture()

	require.NoError(t, f.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alex", Email: "alex@example.com", Password: "secret123",
	}))

	resp, err := f.svc.Login(context.Background(), request_models.LoginRequest{
		Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "free", resp.Tier)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAccountFixture()

	require.NoError(t, f.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alex", Email: "alex@example.com", Password: "secret123",
	}))

	_, err := f.svc.Login(context.Background(), request_models.LoginRequest{
		Email: "alex@example.com", Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogoutBlocklistsRemainingLifetime(t *testing.T) {
	f := newAccountFixture()

	err := f.svc.Logout(context.Background(), "some-jti", time.Now().Add(30*time.Minute).Unix())
	require.NoError(t, err)

	ttl, ok := f.revoker.keys["revoked_jti:some-jti"]
	require.True(t, ok)
	assert.InDelta(t, (30 * time.Minute).Seconds(), ttl.Seconds(), 5)
}

func TestLogoutExpiredTokenIsNoop(t *testing.T) {
	f := newAccountFixture()

	err := f.svc.Logout(context.Background(), "stale-jti", time.Now().Add(-time.Minute).Unix())
	require.NoError(t, err)
	assert.Empty(t, f.revoker.keys)
}

func TestForgotPasswordDoesNotRevealExistence(t *testing.T) {
	f := newAccountFixture()

	err := f.svc.ForgotPassword(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, f.mail.resetMails)
}
