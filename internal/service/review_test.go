package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

func newReviewService(t *testing.T) (*ReviewService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReviewService(repository.NewReviewRepository(db)), mock
}

func expectReviewInsert(mock sqlmock.Sqlmock, rating int) {
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT r.id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_id", "user_id", "user_name", "rating", "comment", "created_at", "user_username",
		}).AddRow(5, 7, nil, "Ivan", rating, "", time.Now(), ""))
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc, mock := newReviewService(t)

	for _, rating := range []int{0, 6, -1, 100} {
		_, err := svc.CreateReview(context.Background(), &entity.Review{
			ProductID: 7, UserName: "Ivan", Rating: rating,
		})
		require.True(t, IsValidation(err), "rating %d must be rejected", rating)
	}
	require.NoError(t, mock.ExpectationsWereMet())

	for _, rating := range []int{1, 5} {
		expectReviewInsert(mock, rating)
		created, err := svc.CreateReview(context.Background(), &entity.Review{
			ProductID: 7, UserName: "Ivan", Rating: rating,
		})
		require.NoError(t, err, "rating %d must be accepted", rating)
		require.Equal(t, rating, created.Rating)
	}
}

func TestCreateReviewNameLength(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.CreateReview(context.Background(), &entity.Review{ProductID: 7, UserName: "I", Rating: 3})
	require.True(t, IsValidation(err))

	_, err = svc.CreateReview(context.Background(), &entity.Review{
		ProductID: 7, UserName: strings.Repeat("x", 101), Rating: 3,
	})
	require.True(t, IsValidation(err))
}

func TestCreateReviewCommentCap(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.CreateReview(context.Background(), &entity.Review{
		ProductID: 7, UserName: "Ivan", Rating: 3, Comment: strings.Repeat("x", 1001),
	})
	require.True(t, IsValidation(err))
}

func TestCreateReviewRequiresProduct(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.CreateReview(context.Background(), &entity.Review{UserName: "Ivan", Rating: 3})
	require.True(t, IsValidation(err))
}
