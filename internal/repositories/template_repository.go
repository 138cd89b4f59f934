package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"proforge/internal/models/db_models"
)

type ITemplateRepository interface {
	GetAll(ctx context.Context) ([]db_models.Template, error)
	GetByID(ctx context.Context, id string) (*db_models.Template, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) ITemplateRepository {
	return &templateRepository{db: db}
}

func (t *templateRepository) GetAll(ctx context.Context) ([]db_models.Template, error) {
	var templates []db_models.Template
	err := t.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("name ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (t *templateRepository) GetByID(ctx context.Context, id string) (*db_models.Template, error) {
	var template db_models.Template
	err := t.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &template, nil
}
