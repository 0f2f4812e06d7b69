package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gigbook/internal/domain"
)

type venueRepository struct {
	DB *sql.DB
}

func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{
		DB: db,
	}
}

const venueColumns = "id, name, city, state, address, phone, image_link, facebook_link, genres"

func scanVenue(row interface{ Scan(...any) error }) (*domain.Venue, error) {
	v := &domain.Venue{}
	err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.FacebookLink, &v.Genres)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, genres)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return runInTx(ctx, r.DB, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query,
			v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Genres,
		).Scan(&v.ID)
	})
}

func (r *venueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	return scanVenue(r.DB.QueryRowContext(ctx, query, id))
}

func (r *venueRepository) ListAll(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]*domain.Venue, error) {
	// ILIKE with a wrapped term: case-insensitive substring match, and an
	// empty term matches every row.
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE '%' || $1 || '%' ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *venueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, image_link = $6, facebook_link = $7, genres = $8
		WHERE id = $9
	`
	return runInTx(ctx, r.DB, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query,
			v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Genres, v.ID,
		)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM venues WHERE id = $1`
	return runInTx(ctx, r.DB, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
