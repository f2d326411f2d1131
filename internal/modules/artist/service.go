package artist

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gigbook/internal/domain"
	"gigbook/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	uow     *repository.UnitOfWork
	artists *repository.ArtistRepository
	venues  *repository.VenueRepository
	details *repository.DetailsRepository
	genres  *repository.GenreRepository
}

func NewService(
	uow *repository.UnitOfWork,
	artists *repository.ArtistRepository,
	venues *repository.VenueRepository,
	details *repository.DetailsRepository,
	genres *repository.GenreRepository,
) *Service {
	return &Service{
		uow:     uow,
		artists: artists,
		venues:  venues,
		details: details,
		genres:  genres,
	}
}

// List returns every artist as a flat id/name listing, unordered.
func (s *Service) List(ctx context.Context) ([]Ref, error) {
	artists, err := s.artists.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]Ref, 0, len(artists))
	for _, a := range artists {
		refs = append(refs, Ref{ID: a.ID, Name: a.Name})
	}
	return refs, nil
}

func (s *Service) Search(ctx context.Context, term string) (*SearchResults, error) {
	artists, err := s.artists.SearchByName(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}

	data := make([]Ref, 0, len(artists))
	for _, a := range artists {
		data = append(data, Ref{ID: a.ID, Name: a.Name})
	}
	return &SearchResults{Count: len(data), Data: data}, nil
}

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

// GetPage assembles the artist detail view, partitioning shows by the
// stored upcoming flag. An unknown id yields the sentinel record.
func (s *Service) GetPage(ctx context.Context, id int64) (*Page, error) {
	a, err := s.artists.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundPage(), nil
	}
	if err != nil {
		return nil, err
	}

	page := &Page{
		ID:                 strconv.FormatInt(id, 10),
		Name:               a.Name,
		Genres:             genreNames(a.Genres),
		City:               a.Details.City,
		State:              a.Details.State,
		Phone:              a.Details.Phone,
		Website:            a.Details.Website,
		FacebookLink:       a.Details.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingText,
		ImageLink:          a.Details.ImageLink,
		PastShows:          []PageShow{},
		UpcomingShows:      []PageShow{},
	}

	for _, show := range a.Shows {
		venue, err := s.venues.GetByID(ctx, show.VenueID)
		if err != nil {
			return nil, err
		}
		entry := PageShow{
			VenueID:        venue.ID,
			VenueName:      venue.Name,
			VenueImageLink: venue.Details.ImageLink,
			StartTime:      show.StartTime.Format(startTimeDisplay),
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

func (s *Service) GetEditForm(ctx context.Context, id int64) (*EditForm, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &EditForm{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genreNames(a.Genres),
		City:               a.Details.City,
		State:              a.Details.State,
		Phone:              a.Details.Phone,
		Website:            a.Details.Website,
		FacebookLink:       a.Details.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingText,
		ImageLink:          a.Details.ImageLink,
	}, nil
}

// Create inserts the details row, the artist referencing it, and the genre
// associations in one transaction. An unknown genre name rolls the whole
// operation back.
func (s *Service) Create(ctx context.Context, f Form) error {
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		d := domain.Details{
			City:         f.City,
			State:        f.State,
			Phone:        f.Phone,
			FacebookLink: f.FacebookLink,
		}
		if err := s.details.WithTx(tx).Create(ctx, &d); err != nil {
			return err
		}

		a := domain.Artist{Name: f.Name, DetailsID: d.ID}
		if err := s.artists.WithTx(tx).Create(ctx, &a); err != nil {
			return err
		}

		genres, err := s.genres.WithTx(tx).GetByNames(ctx, f.Genres)
		if err != nil {
			return err
		}
		return s.artists.WithTx(tx).ReplaceGenres(ctx, &a, genres)
	})
}

// Update overwrites the name and form-carried detail fields and replaces
// the genre set: the old associations are cleared, then one row per
// submitted name is re-added.
func (s *Service) Update(ctx context.Context, id int64, f Form) error {
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		artists := s.artists.WithTx(tx)
		details := s.details.WithTx(tx)

		a, err := artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		d, err := details.GetByID(ctx, a.DetailsID)
		if err != nil {
			return err
		}

		a.Name = f.Name
		d.City = f.City
		d.State = f.State
		d.Phone = f.Phone
		d.FacebookLink = f.FacebookLink

		if err := artists.Save(ctx, a); err != nil {
			return err
		}
		if err := details.Save(ctx, d); err != nil {
			return err
		}

		genres, err := s.genres.WithTx(tx).GetByNames(ctx, f.Genres)
		if err != nil {
			return err
		}
		return artists.ReplaceGenres(ctx, a, genres)
	})
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
