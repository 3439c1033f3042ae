package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/service"
)

type ArtistHandler struct {
	artistService *service.ArtistService
}

// NewArtistHandler creates a new instance of ArtistHandler.
func NewArtistHandler(artistService *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// ListArtists handles GET /api/artists.
func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.artistService.ListArtists(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, artists)
}

// CreateArtist handles POST /api/artists.
func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	artist := entity.Artist{}
	if err := c.Bind(&artist); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.artistService.CreateArtist(c.Request().Context(), &artist)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Artist added",
		"artist":  created,
	})
}

// ListCategories handles GET /api/categories.
func (h *ArtistHandler) ListCategories(c echo.Context) error {
	categories, err := h.artistService.ListCategories(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}
