package repository

import (
	"context"
	"errors"

	"gigbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) WithTx(tx *gorm.DB) *VenueRepository {
	return &VenueRepository{db: tx}
}

// GetAll returns every venue with its details row loaded. No ordering
// guarantee.
func (r *VenueRepository) GetAll(ctx context.Context) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).Preload("Details").Find(&venues).Error
	return venues, err
}

// GetByID loads a venue together with its details, genres and shows.
// Associations are loaded explicitly here; nothing is lazy.
func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var v domain.Venue
	err := r.db.WithContext(ctx).
		Preload("Details").
		Preload("Genres").
		Preload("Shows").
		First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SearchByName is a case-insensitive, unanchored substring match.
// lower() folds ASCII only, so the match stays accent-sensitive.
func (r *VenueRepository) SearchByName(ctx context.Context, term string) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).
		Where("lower(name) LIKE lower(?)", "%"+term+"%").
		Find(&venues).Error
	return venues, err
}

// Create inserts the venue row only; genre associations are attached
// separately via ReplaceGenres.
func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

func (r *VenueRepository) Save(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error
}

// ReplaceGenres swaps the venue's genre set: existing association rows are
// cleared and one row per genre is re-added.
func (r *VenueRepository) ReplaceGenres(ctx context.Context, v *domain.Venue, genres []domain.Genre) error {
	return r.db.WithContext(ctx).Model(v).Association("Genres").Replace(&genres)
}

// Delete removes the venue and its genre association rows. Shows are left
// alone; a venue that is still referenced fails on the foreign key.
func (r *VenueRepository) Delete(ctx context.Context, v *domain.Venue) error {
	if err := r.db.WithContext(ctx).Model(v).Association("Genres").Clear(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(v).Error
}
