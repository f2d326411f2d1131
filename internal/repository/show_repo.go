package repository

import (
	"context"

	"gigbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) WithTx(tx *gorm.DB) *ShowRepository {
	return &ShowRepository{db: tx}
}

func (r *ShowRepository) GetAll(ctx context.Context) ([]domain.Show, error) {
	var shows []domain.Show
	err := r.db.WithContext(ctx).Find(&shows).Error
	return shows, err
}

func (r *ShowRepository) Create(ctx context.Context, s *domain.Show) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}
