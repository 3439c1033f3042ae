package service

import (
	"context"
	"strings"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

type ArtistService struct {
	artistRepo   *repository.ArtistRepository
	categoryRepo *repository.CategoryRepository
}

func NewArtistService(artistRepo *repository.ArtistRepository, categoryRepo *repository.CategoryRepository) *ArtistService {
	return &ArtistService{artistRepo: artistRepo, categoryRepo: categoryRepo}
}

func (s *ArtistService) ListArtists(ctx context.Context) ([]entity.Artist, error) {
	artists, err := s.artistRepo.ListArtists(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing artists")
		return nil, err
	}
	return artists, nil
}

// CreateArtist adds an artist, rejecting duplicate names.
func (s *ArtistService) CreateArtist(ctx context.Context, artist *entity.Artist) (*entity.Artist, error) {
	artist.Name = strings.TrimSpace(artist.Name)
	artist.Country = strings.TrimSpace(artist.Country)
	artist.Bio = strings.TrimSpace(artist.Bio)

	if artist.Name == "" {
		return nil, validation("artist name is required")
	}

	exists, err := s.artistRepo.NameExists(ctx, artist.Name)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking artist name %q", artist.Name)
		return nil, err
	}
	if exists {
		return nil, validation("artist with this name already exists")
	}

	created, err := s.artistRepo.CreateArtist(ctx, artist)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating artist")
		return nil, err
	}
	return created, nil
}

func (s *ArtistService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing categories")
		return nil, err
	}
	return categories, nil
}
