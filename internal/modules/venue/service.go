package venue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gigbook/internal/domain"
	"gigbook/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	uow     *repository.UnitOfWork
	venues  *repository.VenueRepository
	artists *repository.ArtistRepository
	details *repository.DetailsRepository
	genres  *repository.GenreRepository
}

func NewService(
	uow *repository.UnitOfWork,
	venues *repository.VenueRepository,
	artists *repository.ArtistRepository,
	details *repository.DetailsRepository,
	genres *repository.GenreRepository,
) *Service {
	return &Service{
		uow:     uow,
		venues:  venues,
		artists: artists,
		details: details,
		genres:  genres,
	}
}

// ListByArea groups all venues by their (city, state) pair. Group order is
// unspecified; callers must not rely on it.
func (s *Service) ListByArea(ctx context.Context) ([]Area, error) {
	venues, err := s.venues.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	type place struct{ city, state string }

	grouped := make(map[place][]Ref)
	for _, v := range venues {
		p := place{city: v.Details.City, state: v.Details.State}
		grouped[p] = append(grouped[p], Ref{ID: v.ID, Name: v.Name})
	}

	areas := make([]Area, 0, len(grouped))
	for p, refs := range grouped {
		areas = append(areas, Area{City: p.city, State: p.state, Venues: refs})
	}
	return areas, nil
}

// Search matches venue names containing the trimmed term, case-insensitive.
func (s *Service) Search(ctx context.Context, term string) (*SearchResults, error) {
	venues, err := s.venues.SearchByName(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}

	data := make([]Ref, 0, len(venues))
	for _, v := range venues {
		data = append(data, Ref{ID: v.ID, Name: v.Name})
	}
	return &SearchResults{Count: len(data), Data: data}, nil
}

// ListGenres returns the genre reference names for the form selects.
func (s *Service) ListGenres(ctx context.Context) ([]string, error) {
	genres, err := s.genres.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names, nil
}

// GetPage assembles the venue detail view. Shows are partitioned by the
// stored upcoming flag, not by comparing start times to now. An unknown id
// yields the sentinel record, never an error.
func (s *Service) GetPage(ctx context.Context, id int64) (*Page, error) {
	v, err := s.venues.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundPage(), nil
	}
	if err != nil {
		return nil, err
	}

	page := &Page{
		ID:                 strconv.FormatInt(id, 10),
		Name:               v.Name,
		Genres:             genreNames(v.Genres),
		City:               v.Details.City,
		State:              v.Details.State,
		Address:            v.Details.Address,
		Phone:              v.Details.Phone,
		Website:            v.Details.Website,
		FacebookLink:       v.Details.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingText,
		ImageLink:          v.Details.ImageLink,
		PastShows:          []PageShow{},
		UpcomingShows:      []PageShow{},
	}

	for _, show := range v.Shows {
		artist, err := s.artists.GetByID(ctx, show.ArtistID)
		if err != nil {
			return nil, err
		}
		entry := PageShow{
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.Details.ImageLink,
			StartTime:       show.StartTime.Format(startTimeDisplay),
		}
		if show.Upcoming {
			page.UpcomingShows = append(page.UpcomingShows, entry)
			page.UpcomingShowsCount++
		} else {
			page.PastShows = append(page.PastShows, entry)
			page.PastShowsCount++
		}
	}

	return page, nil
}

// GetEditForm prefills the edit page. Unlike detail pages, an unknown id
// here is a hard failure.
func (s *Service) GetEditForm(ctx context.Context, id int64) (*EditForm, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &EditForm{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genreNames(v.Genres),
		City:               v.Details.City,
		State:              v.Details.State,
		Address:            v.Details.Address,
		Phone:              v.Details.Phone,
		Website:            v.Details.Website,
		FacebookLink:       v.Details.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingText,
		ImageLink:          v.Details.ImageLink,
	}, nil
}

// Create inserts the details row, the venue referencing it, and one genre
// association per submitted name, all in one transaction. An unknown genre
// name fails the whole operation.
func (s *Service) Create(ctx context.Context, f Form) error {
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		d := domain.Details{
			City:         f.City,
			State:        f.State,
			Address:      f.Address,
			Phone:        f.Phone,
			FacebookLink: f.FacebookLink,
		}
		if err := s.details.WithTx(tx).Create(ctx, &d); err != nil {
			return err
		}

		v := domain.Venue{Name: f.Name, DetailsID: d.ID}
		if err := s.venues.WithTx(tx).Create(ctx, &v); err != nil {
			return err
		}

		genres, err := s.genres.WithTx(tx).GetByNames(ctx, f.Genres)
		if err != nil {
			return err
		}
		return s.venues.WithTx(tx).ReplaceGenres(ctx, &v, genres)
	})
}

// Update overwrites the name and the detail fields the edit form carries,
// and replaces the genre set (clear then re-add).
func (s *Service) Update(ctx context.Context, id int64, f Form) error {
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		venues := s.venues.WithTx(tx)
		details := s.details.WithTx(tx)

		v, err := venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		d, err := details.GetByID(ctx, v.DetailsID)
		if err != nil {
			return err
		}

		v.Name = f.Name
		d.City = f.City
		d.State = f.State
		d.Phone = f.Phone
		d.FacebookLink = f.FacebookLink

		if err := venues.Save(ctx, v); err != nil {
			return err
		}
		if err := details.Save(ctx, d); err != nil {
			return err
		}

		genres, err := s.genres.WithTx(tx).GetByNames(ctx, f.Genres)
		if err != nil {
			return err
		}
		return venues.ReplaceGenres(ctx, v, genres)
	})
}

// Delete removes the venue and its genre associations. An unknown id or
// any persistence failure is reported to the caller; shows referencing the
// venue make the delete fail on the foreign key.
func (s *Service) Delete(ctx context.Context, id int64) error {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.venues.WithTx(tx).Delete(ctx, v)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("venue %d: %w", id, ErrInUse)
		}
		return err
	}
	return nil
}

// isForeignKeyViolation covers both drivers: code 23503 on postgres, the
// pragma-enforced constraint message on sqlite.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint")
}

func notFoundPage() *Page {
	return &Page{
		ID:            NotFoundMarker,
		Genres:        []string{},
		PastShows:     []PageShow{},
		UpcomingShows: []PageShow{},
	}
}

func genreNames(genres []domain.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}
