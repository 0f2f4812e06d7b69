package services

import (
	"context"
	"time"

	"gigbook/internal/domain"
)

type venueService struct {
	venueRepo      domain.VenueRepository
	showRepo       domain.ShowRepository
	now            func() time.Time
	contextTimeout time.Duration
}

func NewVenueService(venueRepo domain.VenueRepository, showRepo domain.ShowRepository, now func() time.Time, timeout time.Duration) domain.VenueService {
	if now == nil {
		now = time.Now
	}
	return &venueService{
		venueRepo:      venueRepo,
		showRepo:       showRepo,
		now:            now,
		contextTimeout: timeout,
	}
}

// ListVenues groups all venues by city. City groups keep first-encounter
// order over venues iterated in id order, and each group's state is taken
// from the first venue seen for that city.
func (s *venueService) ListVenues(ctx context.Context) ([]*domain.CityVenues, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	groups := make(map[string]*domain.CityVenues)
	ordered := make([]*domain.CityVenues, 0)
	for _, v := range venues {
		g, ok := groups[v.City]
		if !ok {
			g = &domain.CityVenues{City: v.City, State: v.State}
			groups[v.City] = g
			ordered = append(ordered, g)
		}
		count, err := s.showRepo.CountUpcomingByVenue(ctx, v.ID, now)
		if err != nil {
			return nil, err
		}
		g.Venues = append(g.Venues, &domain.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: count,
		})
	}
	return ordered, nil
}

// SearchVenues matches venue names case-insensitively against term as a
// substring. An empty term matches every venue.
func (s *venueService) SearchVenues(ctx context.Context, term string) (*domain.VenueSearchResults, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	now := s.now()
	results := &domain.VenueSearchResults{
		Count: len(venues),
		Data:  make([]*domain.VenueSummary, 0, len(venues)),
	}
	for _, v := range venues {
		count, err := s.showRepo.CountUpcomingByVenue(ctx, v.ID, now)
		if err != nil {
			return nil, err
		}
		results.Data = append(results.Data, &domain.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: count,
		})
	}
	return results, nil
}

// GetVenuePage assembles the venue detail view. Shows are split with
// strict inequalities: a show starting exactly at the query time lands in
// neither list.
func (s *venueService) GetVenuePage(ctx context.Context, id int64) (*domain.VenuePage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.showRepo.ListByVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	page := &domain.VenuePage{
		Venue:         v,
		Genres:        v.GenreList(),
		PastShows:     make([]*domain.VenueShow, 0),
		UpcomingShows: make([]*domain.VenueShow, 0),
	}
	for _, show := range shows {
		switch {
		case show.StartTime.Before(now):
			page.PastShows = append(page.PastShows, show)
		case show.StartTime.After(now):
			page.UpcomingShows = append(page.UpcomingShows, show)
		}
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

func (s *venueService) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.venueRepo.GetByID(ctx, id)
}

func (s *venueService) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.venueRepo.Create(ctx, venue)
}

func (s *venueService) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.venueRepo.Update(ctx, venue)
}

// DeleteVenue removes a venue and returns its name for the status message.
// A lookup miss is the authoritative early exit; nothing is deleted then.
func (s *venueService) DeleteVenue(ctx context.Context, id int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.venueRepo.Delete(ctx, id); err != nil {
		return v.Name, err
	}
	return v.Name, nil
}
