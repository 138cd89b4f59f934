package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proforge/internal/models/db_models"
)

type IReferralRepository interface {
	FindByReferrer(ctx context.Context, referrerID uuid.UUID) ([]db_models.ReferralEarning, error)
	SumByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error)
}

type referralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) IReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) FindByReferrer(ctx context.Context, referrerID uuid.UUID) ([]db_models.ReferralEarning, error) {
	var earnings []db_models.ReferralEarning
	err := r.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&earnings).Error
	if err != nil {
		return nil, err
	}
	return earnings, nil
}

func (r *referralRepository) SumByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.ReferralEarning{}).
		Where("referrer_id = ?", referrerID).
		Select("COALESCE(SUM(amount_minor), 0)").
		Scan(&total).Error
	return total, err
}
