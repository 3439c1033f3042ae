package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new instance of ReviewHandler.
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GetReviews handles GET /api/reviews, returning a product's reviews with stats.
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	productID := queryInt(c, "product_id", 0)

	reviews, stats, err := h.reviewService.GetProductReviews(c.Request().Context(), productID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"stats":   stats,
	})
}

// CreateReview handles POST /api/reviews.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	review := entity.Review{}
	if err := c.Bind(&review); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.reviewService.CreateReview(c.Request().Context(), &review)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Review added",
		"review":  created,
	})
}

// DeleteReview handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID"})
	}
	if err := h.reviewService.DeleteReview(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success", "message": "Review deleted"})
}
