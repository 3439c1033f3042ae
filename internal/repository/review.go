package repository

import (
	"context"
	"database/sql"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db}
}

const reviewColumns = `r.id, r.product_id, r.user_id, r.user_name, r.rating, r.comment, r.created_at, COALESCE(u.username, '') AS user_username`

// ListReviewsByProduct returns the product's reviews, newest first.
func (r *ReviewRepository) ListReviewsByProduct(ctx context.Context, productID int) ([]entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		LEFT JOIN users u ON r.user_id = u.id
		WHERE r.product_id = ?
		ORDER BY r.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, func(rows *sql.Rows) (entity.Review, error) {
		var rev entity.Review
		err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.UserName, &rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.Username)
		return rev, err
	})
}

// GetReviewStats aggregates the rating breakdown for a product.
func (r *ReviewRepository) GetReviewStats(ctx context.Context, productID int) (*entity.ReviewStats, error) {
	query := `
		SELECT COUNT(*) AS total_reviews,
		       COALESCE(AVG(rating), 0) AS average_rating,
		       SUM(CASE WHEN rating = 5 THEN 1 ELSE 0 END) AS rating_5,
		       SUM(CASE WHEN rating = 4 THEN 1 ELSE 0 END) AS rating_4,
		       SUM(CASE WHEN rating = 3 THEN 1 ELSE 0 END) AS rating_3,
		       SUM(CASE WHEN rating = 2 THEN 1 ELSE 0 END) AS rating_2,
		       SUM(CASE WHEN rating = 1 THEN 1 ELSE 0 END) AS rating_1
		FROM reviews
		WHERE product_id = ?`
	var stats entity.ReviewStats
	var r5, r4, r3, r2, r1 sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&stats.TotalReviews, &stats.AverageRating, &r5, &r4, &r3, &r2, &r1)
	if err != nil {
		return nil, err
	}
	stats.Rating5 = int(r5.Int64)
	stats.Rating4 = int(r4.Int64)
	stats.Rating3 = int(r3.Int64)
	stats.Rating2 = int(r2.Int64)
	stats.Rating1 = int(r1.Int64)
	return &stats, nil
}

// CreateReview inserts the review and reads it back joined with the
// reviewer's username.
func (r *ReviewRepository) CreateReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO reviews (product_id, user_id, user_name, rating, comment) VALUES (?, ?, ?, ?, ?)`,
		review.ProductID, review.UserID, review.UserName, review.Rating, review.Comment)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		LEFT JOIN users u ON r.user_id = u.id
		WHERE r.id = ?`
	var created entity.Review
	err = r.db.QueryRowContext(ctx, query, id).Scan(&created.ID, &created.ProductID, &created.UserID, &created.UserName, &created.Rating, &created.Comment, &created.CreatedAt, &created.Username)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
