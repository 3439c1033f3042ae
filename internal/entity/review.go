package entity

import "time"

type Review struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	UserID    *int      `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	// Joined column, set when the review belongs to a registered user.
	Username string `json:"user_username,omitempty"`
}

// ReviewStats is the per-product rating breakdown shown next to the reviews.
type ReviewStats struct {
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	Rating5       int     `json:"rating_5"`
	Rating4       int     `json:"rating_4"`
	Rating3       int     `json:"rating_3"`
	Rating2       int     `json:"rating_2"`
	Rating1       int     `json:"rating_1"`
}
