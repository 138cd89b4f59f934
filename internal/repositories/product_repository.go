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

type IProductRepository interface {
	// CreateWithQuota mirrors the profile-page path: count and insert
	// under the account's row lock.
	CreateWithQuota(ctx context.Context, product *db_models.Product, maxAllowed int) error

	FindByID(ctx context.Context, id string) (*db_models.Product, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Product, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	Update(ctx context.Context, product *db_models.Product) error
	Delete(ctx context.Context, id string, accountID uuid.UUID) error
	SetActive(ctx context.Context, id string, active bool) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &productRepository{db: db}
}

func (p *productRepository) CreateWithQuota(ctx context.Context, product *db_models.Product, maxAllowed int) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guard db_models.WalletProfile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&guard, "account_id = ?", product.AccountID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&db_models.Product{}).
			Where("account_id = ?", product.AccountID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(maxAllowed) {
			return utils.ErrQuotaExceeded
		}

		return tx.Create(product).Error
	})
}

func (p *productRepository) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (p *productRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Product, error) {
	var products []db_models.Product
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&db_models.Product{}).
		Where("account_id = ?", accountID).
		Count(&n).Error
	return n, err
}

func (p *productRepository) Update(ctx context.Context, product *db_models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string, accountID uuid.UUID) error {
	return p.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&db_models.Product{}).Error
}

func (p *productRepository) SetActive(ctx context.Context, id string, active bool) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Product{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
