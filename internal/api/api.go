// Package api holds the echo handlers and the HTTP error mapping.
package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Angelina20062025/WebMusicShop/internal/repository"
	"github.com/Angelina20062025/WebMusicShop/internal/service"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// errorJSON translates service and repository errors into the response
// contract: 400 for validation and stock rejections, 404 for missing rows,
// 401 for credential failures, 500 otherwise. Unexpected errors are
// logged; their detail never reaches the response body.
func errorJSON(c echo.Context, err error) error {
	switch {
	case service.IsValidation(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	default:
		logger.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return v
}

func formInt(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.FormValue(name))
	if err != nil {
		return fallback
	}
	return v
}

func formFloat(c echo.Context, name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(c.FormValue(name), 64)
	if err != nil {
		return fallback
	}
	return v
}
