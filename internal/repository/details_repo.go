package repository

import (
	"context"
	"errors"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type DetailsRepository struct {
	db *gorm.DB
}

func NewDetailsRepository(db *gorm.DB) *DetailsRepository {
	return &DetailsRepository{db: db}
}

func (r *DetailsRepository) WithTx(tx *gorm.DB) *DetailsRepository {
	return &DetailsRepository{db: tx}
}

func (r *DetailsRepository) GetByID(ctx context.Context, id int64) (*domain.Details, error) {
	var d domain.Details
	err := r.db.WithContext(ctx).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DetailsRepository) Create(ctx context.Context, d *domain.Details) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DetailsRepository) Save(ctx context.Context, d *domain.Details) error {
	return r.db.WithContext(ctx).Save(d).Error
}
