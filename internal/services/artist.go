package services

import (
	"context"
	"time"

	"gigbook/internal/domain"
)

type artistService struct {
	artistRepo     domain.ArtistRepository
	showRepo       domain.ShowRepository
	now            func() time.Time
	contextTimeout time.Duration
}

func NewArtistService(artistRepo domain.ArtistRepository, showRepo domain.ShowRepository, now func() time.Time, timeout time.Duration) domain.ArtistService {
	if now == nil {
		now = time.Now
	}
	return &artistService{
		artistRepo:     artistRepo,
		showRepo:       showRepo,
		now:            now,
		contextTimeout: timeout,
	}
}

// ListArtists returns id+name only. The directory page carries no
// upcoming-show counts; only search results do.
func (s *artistService) ListArtists(ctx context.Context) ([]*domain.ArtistRef, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, err := s.artistRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]*domain.ArtistRef, 0, len(artists))
	for _, a := range artists {
		refs = append(refs, &domain.ArtistRef{ID: a.ID, Name: a.Name})
	}
	return refs, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*domain.ArtistSearchResults, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, err := s.artistRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	now := s.now()
	results := &domain.ArtistSearchResults{
		Count: len(artists),
		Data:  make([]*domain.ArtistSummary, 0, len(artists)),
	}
	for _, a := range artists {
		count, err := s.showRepo.CountUpcomingByArtist(ctx, a.ID, now)
		if err != nil {
			return nil, err
		}
		results.Data = append(results.Data, &domain.ArtistSummary{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: count,
		})
	}
	return results, nil
}

// GetArtistPage assembles the artist detail view with the same strict
// past/upcoming boundary as venue pages.
func (s *artistService) GetArtistPage(ctx context.Context, id int64) (*domain.ArtistPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.showRepo.ListByArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	page := &domain.ArtistPage{
		Artist:        a,
		Genres:        a.GenreList(),
		PastShows:     make([]*domain.ArtistShow, 0),
		UpcomingShows: make([]*domain.ArtistShow, 0),
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

func (s *artistService) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.artistRepo.GetByID(ctx, id)
}

func (s *artistService) CreateArtist(ctx context.Context, artist *domain.Artist) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.artistRepo.Create(ctx, artist)
}

func (s *artistService) UpdateArtist(ctx context.Context, artist *domain.Artist) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.artistRepo.Update(ctx, artist)
}
