package repository

import (
	"context"
	"errors"

	"gigbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) WithTx(tx *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: tx}
}

func (r *ArtistRepository) GetAll(ctx context.Context) ([]domain.Artist, error) {
	var artists []domain.Artist
	err := r.db.WithContext(ctx).Find(&artists).Error
	return artists, err
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	var a domain.Artist
	err := r.db.WithContext(ctx).
		Preload("Details").
		Preload("Genres").
		Preload("Shows").
		First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArtistRepository) SearchByName(ctx context.Context, term string) ([]domain.Artist, error) {
	var artists []domain.Artist
	err := r.db.WithContext(ctx).
		Where("lower(name) LIKE lower(?)", "%"+term+"%").
		Find(&artists).Error
	return artists, err
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *ArtistRepository) Save(ctx context.Context, a *domain.Artist) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

func (r *ArtistRepository) ReplaceGenres(ctx context.Context, a *domain.Artist, genres []domain.Genre) error {
	return r.db.WithContext(ctx).Model(a).Association("Genres").Replace(&genres)
}
