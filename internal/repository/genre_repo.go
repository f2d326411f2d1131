package repository

import (
	"context"
	"errors"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// WithTx rebinds the repository onto a running transaction.
func (r *GenreRepository) WithTx(tx *gorm.DB) *GenreRepository {
	return &GenreRepository{db: tx}
}

func (r *GenreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	var genres []domain.Genre
	err := r.db.WithContext(ctx).Find(&genres).Error
	return genres, err
}

// GetByName does an exact-name lookup. Genre names are unique reference
// data, so zero rows means the submitted name does not exist at all.
func (r *GenreRepository) GetByName(ctx context.Context, name string) (*domain.Genre, error) {
	var genre domain.Genre
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetByNames resolves every submitted name or fails the whole lookup.
// There is no genre-creation path, so an unknown name must abort the
// surrounding create/edit operation.
func (r *GenreRepository) GetByNames(ctx context.Context, names []string) ([]domain.Genre, error) {
	genres := make([]domain.Genre, 0, len(names))
	for _, name := range names {
		g, err := r.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *g)
	}
	return genres, nil
}
