package services

import (
	"context"
	"errors"
	"time"

	"gigbook/internal/domain"
)

type showService struct {
	showRepo       domain.ShowRepository
	venueRepo      domain.VenueRepository
	artistRepo     domain.ArtistRepository
	contextTimeout time.Duration
}

func NewShowService(showRepo domain.ShowRepository, venueRepo domain.VenueRepository, artistRepo domain.ArtistRepository, timeout time.Duration) domain.ShowService {
	return &showService{
		showRepo:       showRepo,
		venueRepo:      venueRepo,
		artistRepo:     artistRepo,
		contextTimeout: timeout,
	}
}

// ListShows returns every show joined with its venue and artist, ordered
// ascending by start time. No past/upcoming filtering here.
func (s *showService) ListShows(ctx context.Context) ([]*domain.ShowListing, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.showRepo.ListAll(ctx)
}

// CreateShow inserts a show after verifying both referenced records exist.
// The venue side is checked first; when either check fails nothing is
// inserted. Duplicate (venue, artist, start_time) tuples are permitted.
func (s *showService) CreateShow(ctx context.Context, show *domain.Show) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.venueRepo.GetByID(ctx, show.VenueID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrVenueMissing
		}
		return err
	}
	if _, err := s.artistRepo.GetByID(ctx, show.ArtistID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrArtistMissing
		}
		return err
	}
	return s.showRepo.Create(ctx, show)
}
