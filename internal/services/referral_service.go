package services

import (
	"context"

	"github.com/google/uuid"

	"proforge/internal/models/db_models"
	"proforge/internal/models/response_models"
	"proforge/internal/repositories"
	"proforge/pkg/utils"
)

// CommissionLevel is one step of the referral chain. Level 1 is the
// direct referrer.
type CommissionLevel struct {
	Level   int
	Percent float64
}

// CommissionLevels is walked top-down when a referred user's payment is
// approved; the chain stops early when a profile has no referrer.
var CommissionLevels = []CommissionLevel{
	{Level: 1, Percent: 10},
	{Level: 2, Percent: 5},
	{Level: 3, Percent: 2},
}

// CommissionAmount computes the minor-unit commission for one level,
// truncating fractions in the house's favor.
func CommissionAmount(amountMinor int64, percent float64) int64 {
	return int64(float64(amountMinor) * percent / 100)
}

type ReferralServiceInterface interface {
	Stats(ctx context.Context, accountID uuid.UUID) (response_models.ReferralStatsResponse, error)
	Earnings(ctx context.Context, accountID uuid.UUID) ([]response_models.ReferralEarningResponse, error)
}

type ReferralService struct {
	profileRepo  repositories.WalletProfileRepository
	referralRepo repositories.IReferralRepository
}

func NewReferralService(profileRepo repositories.WalletProfileRepository, referralRepo repositories.IReferralRepository) ReferralServiceInterface {
	return &ReferralService{
		profileRepo:  profileRepo,
		referralRepo: referralRepo,
	}
}

func (r *ReferralService) Stats(ctx context.Context, accountID uuid.UUID) (response_models.ReferralStatsResponse, error) {
	profile, err := r.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return response_models.ReferralStatsResponse{}, utils.ErrDatabaseError
	}
	if profile == nil {
		return response_models.ReferralStatsResponse{}, utils.ErrAccountNotFound
	}

	total, err := r.referralRepo.SumByReferrer(ctx, accountID)
	if err != nil {
		return response_models.ReferralStatsResponse{}, utils.ErrDatabaseError
	}

	return response_models.ReferralStatsResponse{
		ReferralCode:     profile.ReferralCode,
		ReferralCount:    profile.ReferralCount,
		TotalEarnedMinor: total,
	}, nil
}

func (r *ReferralService) Earnings(ctx context.Context, accountID uuid.UUID) ([]response_models.ReferralEarningResponse, error) {
	earnings, err := r.referralRepo.FindByReferrer(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.ReferralEarningResponse, 0, len(earnings))
	for i := range earnings {
		result = append(result, earningToResponse(&earnings[i]))
	}
	return result, nil
}

func earningToResponse(earning *db_models.ReferralEarning) response_models.ReferralEarningResponse {
	return response_models.ReferralEarningResponse{
		ID:                  earning.ID,
		ReferredID:          earning.ReferredID,
		SourceTransactionID: earning.SourceTransactionID,
		Level:               earning.Level,
		Percent:             earning.Percent,
		AmountMinor:         earning.AmountMinor,
		CreatedAt:           earning.CreatedAt,
	}
}
