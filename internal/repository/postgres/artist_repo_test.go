package postgres

import (
	"context"
	"database/sql"
	"testing"

	"gigbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var artistCols = []string{"id", "name", "city", "state", "phone", "image_link", "facebook_link", "genres"}

func TestArtistRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO artists \(name, city, state, phone, image_link, facebook_link, genres\)`).
		WithArgs("Guns N Petals", "San Francisco", "CA", "326-123-5000", "https://example.com/gnp.jpg",
			"https://www.facebook.com/GunsNPetals", "Rock n Roll").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectCommit()

	repo := NewArtistRepository(db)
	artist := &domain.Artist{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		ImageLink:    "https://example.com/gnp.jpg",
		FacebookLink: "https://www.facebook.com/GunsNPetals",
		Genres:       "Rock n Roll",
	}
	require.NoError(t, repo.Create(ctx, artist))
	require.Equal(t, int64(4), artist.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, city, state, phone, image_link, facebook_link, genres FROM artists WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	repo := NewArtistRepository(db)
	_, err = repo.GetByID(ctx, 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, city, state, phone, image_link, facebook_link, genres FROM artists ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(artistCols).
			AddRow(int64(4), "Guns N Petals", "San Francisco", "CA", "", "", "", "Rock n Roll").
			AddRow(int64(5), "Matt Quevedo", "New York", "NY", "", "", "", "Jazz"))

	repo := NewArtistRepository(db)
	artists, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	require.Equal(t, "Guns N Petals", artists[0].Name)
	require.Equal(t, "Matt Quevedo", artists[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepository_Update_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE artists`).
		WithArgs("Ghost", "", "", "", "", "", "", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewArtistRepository(db)
	err = repo.Update(ctx, &domain.Artist{ID: 42, Name: "Ghost"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
