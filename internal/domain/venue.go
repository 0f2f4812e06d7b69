package domain

import (
	"context"
	"strings"
)

// Venue is a physical location that can host shows. Genres are stored
// denormalized as a comma-joined string, matching the stored format.
type Venue struct {
	ID           int64
	Name         string
	City         string
	State        string
	Address      string
	Phone        string
	ImageLink    string
	FacebookLink string
	Genres       string
}

// GenreList recovers the genre list from its comma-joined stored form.
func (v *Venue) GenreList() []string {
	if v.Genres == "" {
		return nil
	}
	return strings.Split(v.Genres, ",")
}

// VenueSummary is a venue row annotated with its upcoming-show count,
// used by the grouped directory and search results.
type VenueSummary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// CityVenues groups the venues of one city for the directory page.
// State is taken from the first venue encountered for the city.
type CityVenues struct {
	City   string
	State  string
	Venues []*VenueSummary
}

// VenueSearchResults holds the outcome of a venue name search.
type VenueSearchResults struct {
	Count int
	Data  []*VenueSummary
}

// VenuePage is the detail view of one venue with its shows split into
// past and upcoming relative to the time of the query.
type VenuePage struct {
	Venue              *Venue
	Genres             []string
	PastShows          []*VenueShow
	UpcomingShows      []*VenueShow
	PastShowsCount     int
	UpcomingShowsCount int
}

// VenueRepository defines the interface for venue storage.
type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id int64) (*Venue, error)
	ListAll(ctx context.Context) ([]*Venue, error)
	SearchByName(ctx context.Context, term string) ([]*Venue, error)
	Update(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id int64) error
}

// VenueService is the query/command surface behind the venue routes.
type VenueService interface {
	ListVenues(ctx context.Context) ([]*CityVenues, error)
	SearchVenues(ctx context.Context, term string) (*VenueSearchResults, error)
	GetVenuePage(ctx context.Context, id int64) (*VenuePage, error)
	GetVenue(ctx context.Context, id int64) (*Venue, error)
	CreateVenue(ctx context.Context, venue *Venue) error
	UpdateVenue(ctx context.Context, venue *Venue) error
	DeleteVenue(ctx context.Context, id int64) (name string, err error)
}
