package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"proforge/internal/models/db_models"
)

type IPlanRepository interface {
	GetByID(ctx context.Context, planID string) (*db_models.Plan, error)
	GetByCode(ctx context.Context, code string) (*db_models.Plan, error)
	GetAll(ctx context.Context, activeOnly bool) ([]db_models.Plan, error)
	GetFreePlan(ctx context.Context) (*db_models.Plan, error)
	Insert(ctx context.Context, plan *db_models.Plan) error
	Update(ctx context.Context, plan *db_models.Plan) error
	Delete(ctx context.Context, planID string) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) GetByID(ctx context.Context, planID string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *PlanRepository) GetByCode(ctx context.Context, code string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *PlanRepository) GetAll(ctx context.Context, activeOnly bool) ([]db_models.Plan, error) {
	q := p.db.WithContext(ctx).Order("price_minor ASC")
	if activeOnly {
		q = q.Where("is_active = TRUE")
	}

	var plans []db_models.Plan
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *PlanRepository) GetFreePlan(ctx context.Context) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).
		Where("tier = ? AND price_minor = 0 AND is_active = TRUE", "free").
		Order("created_at ASC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *PlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *PlanRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

func (p *PlanRepository) Delete(ctx context.Context, planID string) error {
	return p.db.WithContext(ctx).Delete(&db_models.Plan{}, "id = ?", planID).Error
}
