package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proforge/internal/models/db_models"
)

// Profiles are created alongside their account in
// AccountRepository.CreateWithProfile; this repository only reads them.
type WalletProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.WalletProfile, error)
	FindByReferralCode(ctx context.Context, code string) (*db_models.WalletProfile, error)
}

type walletProfileRepository struct {
	db *gorm.DB
}

func NewWalletProfileRepository(db *gorm.DB) WalletProfileRepository {
	return &walletProfileRepository{db: db}
}

func (w *walletProfileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.WalletProfile, error) {
	var profile db_models.WalletProfile
	err := w.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (w *walletProfileRepository) FindByReferralCode(ctx context.Context, code string) (*db_models.WalletProfile, error) {
	var profile db_models.WalletProfile
	err := w.db.WithContext(ctx).First(&profile, "referral_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}
