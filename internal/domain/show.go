package domain

import (
	"context"
	"errors"
	"time"
)

// Referential pre-check failures for show creation. These are soft
// validation outcomes surfaced as flash messages, not hard faults.
var (
	ErrVenueMissing  = errors.New("venue does not exist")
	ErrArtistMissing = errors.New("artist does not exist")
)

// Show is a scheduled booking linking one venue and one artist at a
// start time. Past/upcoming is derived from StartTime at query time and
// never stored.
type Show struct {
	ID        int64
	VenueID   int64
	ArtistID  int64
	StartTime time.Time
}

// VenueShow is a show row joined with its artist, for a venue detail page.
type VenueShow struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShow is a show row joined with its venue, for an artist detail page.
type ArtistShow struct {
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowListing is a show joined with both sides, for the full show list.
type ShowListing struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowRepository defines the interface for show storage.
type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	ListAll(ctx context.Context) ([]*ShowListing, error)
	ListByVenue(ctx context.Context, venueID int64) ([]*VenueShow, error)
	ListByArtist(ctx context.Context, artistID int64) ([]*ArtistShow, error)
	CountUpcomingByVenue(ctx context.Context, venueID int64, now time.Time) (int, error)
	CountUpcomingByArtist(ctx context.Context, artistID int64, now time.Time) (int, error)
}

// ShowService is the query/command surface behind the show routes.
type ShowService interface {
	ListShows(ctx context.Context) ([]*ShowListing, error)
	CreateShow(ctx context.Context, show *Show) error
}
