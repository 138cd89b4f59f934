package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"proforge/internal/models/db_models"
)

type AccountRepository interface {
	// CreateWithProfile inserts the account, its wallet profile and the
	// referrer's count bump in one transaction. An account without a
	// wallet profile can never create pages or read a wallet, so the
	// two rows live or die together.
	CreateWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.WalletProfile) error
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	ListAll(ctx context.Context) ([]db_models.Account, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end int64) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) CreateWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.WalletProfile) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		profile.AccountID = account.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		if profile.ReferrerID != nil {
			return tx.Model(&db_models.WalletProfile{}).
				Where("account_id = ?", *profile.ReferrerID).
				UpdateColumn("referral_count", gorm.Expr("referral_count + 1")).Error
		}
		return nil
	})
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (a *accountRepository) SetActive(ctx context.Context, id string, active bool) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Order("created_at DESC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := a.db.WithContext(ctx).Model(&db_models.Account{}).Count(&n).Error
	return n, err
}

func (a *accountRepository) CountCreatedBetween(ctx context.Context, start, end int64) (int64, error) {
	var n int64
	err := a.db.WithContext(ctx).Model(&db_models.Account{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&n).Error
	return n, err
}
