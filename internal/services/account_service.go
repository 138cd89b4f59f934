package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"proforge/internal/models/db_models"
	"proforge/internal/models/request_models"
	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	mem "proforge/pkg/memcache"
	"proforge/pkg/middleware"
	"proforge/pkg/utils"
)

const (
	resetTokenTTL      = 15 * time.Minute
	referralCodeLength = 8
)

// TokenRevoker stores a revoked token JTI until the token would have
// expired on its own. Backed by Redis in production.
type TokenRevoker interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error)
	Logout(ctx context.Context, jti string, expiresAt int64) error
	GetAccount(ctx context.Context, accountID string) (response_models.AccountResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOtpToken(request request_models.RequestVerifyOtpToken) error
	ResetPasswordWithOtp(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	profileRepo  repositories.WalletProfileRepository
	subscription SubscriptionServiceInterface
	mailService  IMailService
	resetTokens  mem.ResetTokenStore
	tokenIssuer  *utils.TokenIssuer
	revoker      TokenRevoker
	logger       *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.WalletProfileRepository,
	subscription SubscriptionServiceInterface,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	tokenIssuer *utils.TokenIssuer,
	revoker TokenRevoker,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		subscription: subscription,
		mailService:  mailService,
		resetTokens:  resetTokens,
		tokenIssuer:  tokenIssuer,
		revoker:      revoker,
		logger:       logger,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	// Resolve the referrer before writing anything so a bad code aborts
	// the whole signup.
	var referrerID *uuid.UUID
	if request.ReferralCode != "" {
		referrer, err := a.profileRepo.FindByReferralCode(ctx, request.ReferralCode)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if referrer == nil {
			return utils.ErrInvalidReferralCode
		}
		referrerID = &referrer.AccountID
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	code, err := utils.GenerateReferralCode(referralCodeLength)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
		IsActive:     true,
	}
	profile := &db_models.WalletProfile{
		ReferralCode: code,
		ReferrerID:   referrerID,
	}

	// One transaction: a half-created account (no wallet profile) could
	// never create pages or re-register past the email check.
	if err := a.accountRepo.CreateWithProfile(ctx, account, profile); err != nil {
		a.logger.Error("signup failed", zap.String("email", request.Email), zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.tokenIssuer.CreateToken(account.ID, account.Role)
	if err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	resolution, err := a.subscription.CurrentPlan(ctx, account.ID)
	if err != nil {
		return response_models.AccountLoginResponse{}, err
	}

	return response_models.AccountLoginResponse{
		Token: token,
		Tier:  resolution.Plan.Tier,
	}, nil
}

// Logout blocklists the token's JTI for its remaining lifetime, the
// server-side equivalent of purging every persisted auth key.
func (a *AccountService) Logout(ctx context.Context, jti string, expiresAt int64) error {
	ttl := time.Until(time.Unix(expiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	return a.revoker.Set(ctx, middleware.RevokedTokenKeyPrefix+jti, "1", ttl)
}

func (a *AccountService) GetAccount(ctx context.Context, accountID string) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	return AccountToResponse(account), nil
}

func AccountToResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
	}
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	otp, err := utils.GenerateOtpCode(6)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(otp, account.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(account.Email, otp); err != nil {
		a.logger.Error("failed to send reset mail", zap.String("email", email), zap.Error(err))
		return err
	}

	return nil
}

func (a *AccountService) VerifyOtpToken(request request_models.RequestVerifyOtpToken) error {
	email, ok := a.resetTokens.Peek(request.Token)
	if !ok || email != request.Email {
		return utils.ErrInvalidResetToken
	}
	return nil
}

func (a *AccountService) ResetPasswordWithOtp(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePassword(ctx, account.ID.String(), hashed); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
