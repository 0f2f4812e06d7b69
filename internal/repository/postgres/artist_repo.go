package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gigbook/internal/domain"
)

type artistRepository struct {
	DB *sql.DB
}

func NewArtistRepository(db *sql.DB) domain.ArtistRepository {
	return &artistRepository{
		DB: db,
	}
}

const artistColumns = "id, name, city, state, phone, image_link, facebook_link, genres"

func scanArtist(row interface{ Scan(...any) error }) (*domain.Artist, error) {
	a := &domain.Artist{}
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink, &a.FacebookLink, &a.Genres)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO artists (name, city, state, phone, image_link, facebook_link, genres)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return runInTx(ctx, r.DB, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query,
			a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink, a.Genres,
		).Scan(&a.ID)
	})
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	return scanArtist(r.DB.QueryRowContext(ctx, query, id))
}

func (r *artistRepository) ListAll(ctx context.Context) ([]*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE '%' || $1 || '%' ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *artistRepository) Update(ctx context.Context, a *domain.Artist) error {
	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, image_link = $5, facebook_link = $6, genres = $7
		WHERE id = $8
	`
	return runInTx(ctx, r.DB, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query,
			a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink, a.Genres, a.ID,
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
