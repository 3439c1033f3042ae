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

func newArticleService(t *testing.T) (*ArticleService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewArticleService(repository.NewArticleRepository(db)), mock
}

func TestCreateArticleRejectsUnsafeSlug(t *testing.T) {
	svc, mock := newArticleService(t)

	for _, slug := range []string{"", "Has Spaces", "UPPER", "русский", "trailing-", "-leading", "double--dash"} {
		_, err := svc.CreateArticle(context.Background(), &entity.Article{Title: "t", Slug: slug})
		require.True(t, IsValidation(err), "slug %q must be rejected", slug)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticleRejectsDuplicateSlug(t *testing.T) {
	svc, mock := newArticleService(t)

	mock.ExpectQuery("SELECT id FROM articles").
		WithArgs("vinyl-care", 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	_, err := svc.CreateArticle(context.Background(), &entity.Article{Title: "t", Slug: "vinyl-care"})
	require.True(t, IsValidation(err))
}

func TestCreateArticleAcceptsFreeSlug(t *testing.T) {
	svc, mock := newArticleService(t)

	mock.ExpectQuery("SELECT id FROM articles").
		WithArgs("vinyl-care-2", 0).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO articles").
		WillReturnResult(sqlmock.NewResult(8, 1))

	id, err := svc.CreateArticle(context.Background(), &entity.Article{Title: "t", Slug: "vinyl-care-2"})
	require.NoError(t, err)
	require.Equal(t, 8, id)
}

func TestUpdateArticleKeepsOwnSlug(t *testing.T) {
	svc, mock := newArticleService(t)

	// The exclusion makes an update with an unchanged slug legal.
	mock.ExpectQuery("SELECT id FROM articles").
		WithArgs("vinyl-care", 8).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("UPDATE articles").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.UpdateArticle(context.Background(), &entity.Article{ID: 8, Title: "t", Slug: "vinyl-care"})
	require.NoError(t, err)
}
