package services

import (
	"context"
	"time"

	"gigbook/internal/domain"
)

// fakeVenueRepo implements domain.VenueRepository for service tests.
type fakeVenueRepo struct {
	byID         map[int64]*domain.Venue
	all          []*domain.Venue
	searchResult []*domain.Venue
	lastSearch   string
	created      *domain.Venue
	updated      *domain.Venue
	deletedID    int64
	deleteCalled bool
	createErr    error
	updateErr    error
	deleteErr    error
	listErr      error
}

func (f *fakeVenueRepo) Create(_ context.Context, v *domain.Venue) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = v
	return nil
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeVenueRepo) ListAll(_ context.Context) ([]*domain.Venue, error) {
	return f.all, f.listErr
}

func (f *fakeVenueRepo) SearchByName(_ context.Context, term string) ([]*domain.Venue, error) {
	f.lastSearch = term
	return f.searchResult, nil
}

func (f *fakeVenueRepo) Update(_ context.Context, v *domain.Venue) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = v
	return nil
}

func (f *fakeVenueRepo) Delete(_ context.Context, id int64) error {
	f.deleteCalled = true
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

// fakeArtistRepo implements domain.ArtistRepository for service tests.
type fakeArtistRepo struct {
	byID         map[int64]*domain.Artist
	all          []*domain.Artist
	searchResult []*domain.Artist
	lastSearch   string
	created      *domain.Artist
	updated      *domain.Artist
	createErr    error
	updateErr    error
}

func (f *fakeArtistRepo) Create(_ context.Context, a *domain.Artist) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = a
	return nil
}

func (f *fakeArtistRepo) GetByID(_ context.Context, id int64) (*domain.Artist, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeArtistRepo) ListAll(_ context.Context) ([]*domain.Artist, error) {
	return f.all, nil
}

func (f *fakeArtistRepo) SearchByName(_ context.Context, term string) ([]*domain.Artist, error) {
	f.lastSearch = term
	return f.searchResult, nil
}

func (f *fakeArtistRepo) Update(_ context.Context, a *domain.Artist) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = a
	return nil
}

// fakeShowRepo implements domain.ShowRepository for service tests.
type fakeShowRepo struct {
	countsByVenue  map[int64]int
	countsByArtist map[int64]int
	byVenue        map[int64][]*domain.VenueShow
	byArtist       map[int64][]*domain.ArtistShow
	listings       []*domain.ShowListing
	created        *domain.Show
	createErr      error
	lastCountNow   time.Time
}

func (f *fakeShowRepo) Create(_ context.Context, s *domain.Show) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = s
	return nil
}

func (f *fakeShowRepo) ListAll(_ context.Context) ([]*domain.ShowListing, error) {
	return f.listings, nil
}

func (f *fakeShowRepo) ListByVenue(_ context.Context, venueID int64) ([]*domain.VenueShow, error) {
	return f.byVenue[venueID], nil
}

func (f *fakeShowRepo) ListByArtist(_ context.Context, artistID int64) ([]*domain.ArtistShow, error) {
	return f.byArtist[artistID], nil
}

func (f *fakeShowRepo) CountUpcomingByVenue(_ context.Context, venueID int64, now time.Time) (int, error) {
	f.lastCountNow = now
	return f.countsByVenue[venueID], nil
}

func (f *fakeShowRepo) CountUpcomingByArtist(_ context.Context, artistID int64, now time.Time) (int, error) {
	f.lastCountNow = now
	return f.countsByArtist[artistID], nil
}
