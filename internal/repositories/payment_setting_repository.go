package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"proforge/internal/models/db_models"
)

type IPaymentSettingRepository interface {
	Get(ctx context.Context) (*db_models.PaymentSetting, error)
	Upsert(ctx context.Context, setting *db_models.PaymentSetting) error
}

type paymentSettingRepository struct {
	db *gorm.DB
}

func NewPaymentSettingRepository(db *gorm.DB) IPaymentSettingRepository {
	return &paymentSettingRepository{db: db}
}

func (p *paymentSettingRepository) Get(ctx context.Context) (*db_models.PaymentSetting, error) {
	var setting db_models.PaymentSetting
	err := p.db.WithContext(ctx).Order("created_at ASC").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &setting, nil
}

func (p *paymentSettingRepository) Upsert(ctx context.Context, setting *db_models.PaymentSetting) error {
	existing, err := p.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		setting.ID = existing.ID
		setting.CreatedAt = existing.CreatedAt
	}
	return p.db.WithContext(ctx).Save(setting).Error
}
