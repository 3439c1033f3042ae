package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

func newArtistService(t *testing.T) (*ArtistService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewArtistService(repository.NewArtistRepository(db), repository.NewCategoryRepository(db)), mock
}

func TestCreateArtistRejectsDuplicateName(t *testing.T) {
	svc, mock := newArtistService(t)

	mock.ExpectQuery("SELECT id FROM artists").
		WithArgs("Pink Floyd").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	_, err := svc.CreateArtist(context.Background(), &entity.Artist{Name: "Pink Floyd"})
	require.True(t, IsValidation(err))
}

func TestCreateArtistAcceptsFreeName(t *testing.T) {
	svc, mock := newArtistService(t)

	mock.ExpectQuery("SELECT id FROM artists").
		WithArgs("Kino").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO artists").
		WithArgs("Kino", "USSR", "").
		WillReturnResult(sqlmock.NewResult(9, 1))

	created, err := svc.CreateArtist(context.Background(), &entity.Artist{Name: " Kino ", Country: "USSR"})
	require.NoError(t, err)
	require.Equal(t, 9, created.ID)
	require.Equal(t, "Kino", created.Name, "name must be stored trimmed")
}

func TestCreateArtistRequiresName(t *testing.T) {
	svc, mock := newArtistService(t)

	_, err := svc.CreateArtist(context.Background(), &entity.Artist{Name: "   "})
	require.True(t, IsValidation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
