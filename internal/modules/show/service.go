package show

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gigbook/internal/domain"
	"gigbook/internal/repository"

	"gorm.io/gorm"
)

// Accepted start-time formats: the plain form layout plus the value an
// HTML datetime-local input submits.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type Service struct {
	uow     *repository.UnitOfWork
	shows   *repository.ShowRepository
	artists *repository.ArtistRepository
	venues  *repository.VenueRepository
}

func NewService(
	uow *repository.UnitOfWork,
	shows *repository.ShowRepository,
	artists *repository.ArtistRepository,
	venues *repository.VenueRepository,
) *Service {
	return &Service{
		uow:     uow,
		shows:   shows,
		artists: artists,
		venues:  venues,
	}
}

// List flattens every show with its artist and venue resolved. No
// ordering guarantee.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	shows, err := s.shows.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(shows))
	for _, sh := range shows {
		artist, err := s.artists.GetByID(ctx, sh.ArtistID)
		if err != nil {
			return nil, err
		}
		venue, err := s.venues.GetByID(ctx, sh.VenueID)
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{
			ArtistID:        sh.ArtistID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.Details.ImageLink,
			VenueID:         sh.VenueID,
			VenueName:       venue.Name,
			StartTime:       sh.StartTime.Format(startTimeDisplay),
		})
	}
	return out, nil
}

// Create inserts one show. The upcoming flag is decided here, once, by
// comparing the submitted start time against now; nothing ever recomputes
// it afterwards.
func (s *Service) Create(ctx context.Context, f Form) error {
	artistID, err := strconv.ParseInt(f.ArtistID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid artist id %q: %w", f.ArtistID, err)
	}
	venueID, err := strconv.ParseInt(f.VenueID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid venue id %q: %w", f.VenueID, err)
	}
	start, err := parseStartTime(f.StartTime)
	if err != nil {
		return err
	}

	sh := domain.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: start,
		Upcoming:  start.After(time.Now()),
	}
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.shows.WithTx(tx).Create(ctx, &sh)
	})
}

func parseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", value)
}
