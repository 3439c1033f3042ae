package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// GetProductReviews returns a product's reviews together with the rating
// breakdown.
func (s *ReviewService) GetProductReviews(ctx context.Context, productID int) ([]entity.Review, *entity.ReviewStats, error) {
	if productID <= 0 {
		return nil, nil, validation("product_id is required")
	}
	reviews, err := s.reviewRepo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing reviews for product %d", productID)
		return nil, nil, err
	}
	stats, err := s.reviewRepo.GetReviewStats(ctx, productID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting review stats for product %d", productID)
		return nil, nil, err
	}
	return reviews, stats, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	review.UserName = strings.TrimSpace(review.UserName)
	review.Comment = strings.TrimSpace(review.Comment)

	if review.ProductID <= 0 {
		return nil, validation("product_id is required")
	}
	if len(review.UserName) < 2 || len(review.UserName) > 100 {
		return nil, validation("user_name must be between 2 and 100 characters")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, validation("rating must be between 1 and 5")
	}
	if len(review.Comment) > 1000 {
		return nil, validation("comment must not exceed 1000 characters")
	}

	created, err := s.reviewRepo.CreateReview(ctx, review)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating review")
		return nil, err
	}
	return created, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id int) error {
	if id <= 0 {
		return validation("review id is required")
	}
	if err := s.reviewRepo.DeleteReview(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error deleting review %d", id)
		}
		return err
	}
	return nil
}
