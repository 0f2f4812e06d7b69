package domain

import (
	"context"
	"strings"
)

// Artist is a performer that can be booked for shows.
type Artist struct {
	ID           int64
	Name         string
	City         string
	State        string
	Phone        string
	ImageLink    string
	FacebookLink string
	Genres       string
}

// GenreList recovers the genre list from its comma-joined stored form.
func (a *Artist) GenreList() []string {
	if a.Genres == "" {
		return nil
	}
	return strings.Split(a.Genres, ",")
}

// ArtistRef is the id+name projection used by the artist directory.
// Unlike venues, the directory does not annotate upcoming-show counts.
type ArtistRef struct {
	ID   int64
	Name string
}

// ArtistSummary is an artist search hit annotated with its upcoming-show count.
type ArtistSummary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// ArtistSearchResults holds the outcome of an artist name search.
type ArtistSearchResults struct {
	Count int
	Data  []*ArtistSummary
}

// ArtistPage is the detail view of one artist with its shows split into
// past and upcoming relative to the time of the query.
type ArtistPage struct {
	Artist             *Artist
	Genres             []string
	PastShows          []*ArtistShow
	UpcomingShows      []*ArtistShow
	PastShowsCount     int
	UpcomingShowsCount int
}

// ArtistRepository defines the interface for artist storage.
type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id int64) (*Artist, error)
	ListAll(ctx context.Context) ([]*Artist, error)
	SearchByName(ctx context.Context, term string) ([]*Artist, error)
	Update(ctx context.Context, artist *Artist) error
}

// ArtistService is the query/command surface behind the artist routes.
type ArtistService interface {
	ListArtists(ctx context.Context) ([]*ArtistRef, error)
	SearchArtists(ctx context.Context, term string) (*ArtistSearchResults, error)
	GetArtistPage(ctx context.Context, id int64) (*ArtistPage, error)
	GetArtist(ctx context.Context, id int64) (*Artist, error)
	CreateArtist(ctx context.Context, artist *Artist) error
	UpdateArtist(ctx context.Context, artist *Artist) error
}
