package postgres

import (
	"context"
	"database/sql"
	"time"

	"gigbook/internal/domain"
)

type showRepository struct {
	DB *sql.DB
}

func NewShowRepository(db *sql.DB) domain.ShowRepository {
	return &showRepository{
		DB: db,
	}
}

func (r *showRepository) Create(ctx context.Context, s *domain.Show) error {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return runInTx(ctx, r.DB, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, s.VenueID, s.ArtistID, s.StartTime).Scan(&s.ID)
	})
}

func (r *showRepository) ListAll(ctx context.Context) ([]*domain.ShowListing, error) {
	query := `
		SELECT v.id, v.name, a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	listings := make([]*domain.ShowListing, 0)
	for rows.Next() {
		l := &domain.ShowListing{}
		if err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *showRepository) ListByVenue(ctx context.Context, venueID int64) ([]*domain.VenueShow, error) {
	query := `
		SELECT a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	shows := make([]*domain.VenueShow, 0)
	for rows.Next() {
		vs := &domain.VenueShow{}
		if err := rows.Scan(&vs.ArtistID, &vs.ArtistName, &vs.ArtistImageLink, &vs.StartTime); err != nil {
			return nil, err
		}
		shows = append(shows, vs)
	}
	return shows, rows.Err()
}

func (r *showRepository) ListByArtist(ctx context.Context, artistID int64) ([]*domain.ArtistShow, error) {
	query := `
		SELECT v.id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	shows := make([]*domain.ArtistShow, 0)
	for rows.Next() {
		as := &domain.ArtistShow{}
		if err := rows.Scan(&as.VenueID, &as.VenueName, &as.VenueImageLink, &as.StartTime); err != nil {
			return nil, err
		}
		shows = append(shows, as)
	}
	return shows, rows.Err()
}

func (r *showRepository) CountUpcomingByVenue(ctx context.Context, venueID int64, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM shows WHERE venue_id = $1 AND start_time > $2`
	var count int
	err := r.DB.QueryRowContext(ctx, query, venueID, now).Scan(&count)
	return count, err
}

func (r *showRepository) CountUpcomingByArtist(ctx context.Context, artistID int64, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM shows WHERE artist_id = $1 AND start_time > $2`
	var count int
	err := r.DB.QueryRowContext(ctx, query, artistID, now).Scan(&count)
	return count, err
}
