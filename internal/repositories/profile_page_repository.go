package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"proforge/internal/models/db_models"
	"proforge/pkg/utils"
)

type IProfilePageRepository interface {
	// CreateWithQuota counts and inserts inside one transaction holding
	// the account's wallet-profile row lock, so two concurrent creates
	// cannot both squeeze under the limit.
	CreateWithQuota(ctx context.Context, page *db_models.ProfilePage, maxAllowed int) error

	FindByID(ctx context.Context, id string) (*db_models.ProfilePage, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ProfilePage, error)
	FindActiveByCustomURL(ctx context.Context, customURL string) (*db_models.ProfilePage, error)
	CustomURLTaken(ctx context.Context, customURL string, excludeID uuid.UUID) (bool, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end int64) (int64, error)
	Update(ctx context.Context, page *db_models.ProfilePage) error
	Delete(ctx context.Context, id string, accountID uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

type profilePageRepository struct {
	db *gorm.DB
}

func NewProfilePageRepository(db *gorm.DB) IProfilePageRepository {
	return &profilePageRepository{db: db}
}

func (p *profilePageRepository) CreateWithQuota(ctx context.Context, page *db_models.ProfilePage, maxAllowed int) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The wallet profile row doubles as the per-account mutex for
		// quota-gated writes.
		var guard db_models.WalletProfile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&guard, "account_id = ?", page.AccountID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&db_models.ProfilePage{}).
			Where("account_id = ?", page.AccountID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(maxAllowed) {
			return utils.ErrQuotaExceeded
		}

		return tx.Create(page).Error
	})
}

func (p *profilePageRepository) FindByID(ctx context.Context, id string) (*db_models.ProfilePage, error) {
	var page db_models.ProfilePage
	err := p.db.WithContext(ctx).First(&page, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &page, nil
}

func (p *profilePageRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ProfilePage, error) {
	var pages []db_models.ProfilePage
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (p *profilePageRepository) FindActiveByCustomURL(ctx context.Context, customURL string) (*db_models.ProfilePage, error) {
	var page db_models.ProfilePage
	err := p.db.WithContext(ctx).
		Preload("Template").
		Where("custom_url = ? AND is_active = TRUE", customURL).
		First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &page, nil
}

func (p *profilePageRepository) CustomURLTaken(ctx context.Context, customURL string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := p.db.WithContext(ctx).Model(&db_models.ProfilePage{}).
		Where("custom_url = ?", customURL)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *profilePageRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&db_models.ProfilePage{}).
		Where("account_id = ?", accountID).
		Count(&n).Error
	return n, err
}

func (p *profilePageRepository) CountCreatedBetween(ctx context.Context, start, end int64) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&db_models.ProfilePage{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&n).Error
	return n, err
}

func (p *profilePageRepository) Update(ctx context.Context, page *db_models.ProfilePage) error {
	return p.db.WithContext(ctx).Save(page).Error
}

func (p *profilePageRepository) Delete(ctx context.Context, id string, accountID uuid.UUID) error {
	return p.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&db_models.ProfilePage{}).Error
}

func (p *profilePageRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return p.db.WithContext(ctx).
		Model(&db_models.ProfilePage{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
