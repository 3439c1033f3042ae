package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

// slugPattern accepts lowercase latin words separated by single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type ArticleService struct {
	articleRepo *repository.ArticleRepository
}

func NewArticleService(articleRepo *repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

func (s *ArticleService) ListArticles(ctx context.Context, page, limit int, category string) ([]entity.Article, entity.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	articles, total, err := s.articleRepo.ListArticles(ctx, page, limit, category)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing articles")
		return nil, entity.Pagination{}, err
	}
	return articles, entity.NewPagination(page, limit, total), nil
}

func (s *ArticleService) GetArticle(ctx context.Context, id int) (*entity.Article, error) {
	article, err := s.articleRepo.GetArticleByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting article %d", id)
		}
		return nil, err
	}
	return article, nil
}

// GetArticleBySlug returns the article and bumps its view counter.
func (s *ArticleService) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := s.articleRepo.GetArticleBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting article by slug %q", slug)
		}
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *entity.Article) (int, error) {
	if err := s.validateArticle(ctx, article, 0); err != nil {
		return 0, err
	}
	id, err := s.articleRepo.CreateArticle(ctx, article)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating article")
		return 0, err
	}
	return id, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, article *entity.Article) error {
	if article.ID <= 0 {
		return validation("article id is required")
	}
	if err := s.validateArticle(ctx, article, article.ID); err != nil {
		return err
	}
	if err := s.articleRepo.UpdateArticle(ctx, article); err != nil {
		logger.Error().Err(err).Msgf("Error updating article %d", article.ID)
		return err
	}
	return nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id int) error {
	if err := s.articleRepo.DeleteArticle(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error deleting article %d", id)
		}
		return err
	}
	return nil
}

// validateArticle enforces the slug invariant: URL-safe and unique across
// all other articles. The unique index on articles.slug backs this check.
func (s *ArticleService) validateArticle(ctx context.Context, article *entity.Article, excludeID int) error {
	if article.Title == "" {
		return validation("title is required")
	}
	if article.Slug == "" {
		return validation("slug is required")
	}
	if !slugPattern.MatchString(article.Slug) {
		return validation("slug must contain only lowercase letters, digits and hyphens")
	}
	exists, err := s.articleRepo.SlugExists(ctx, article.Slug, excludeID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking slug %q", article.Slug)
		return err
	}
	if exists {
		return validation("slug already exists")
	}
	return nil
}
