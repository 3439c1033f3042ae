package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

type ProductService struct {
	productRepo *repository.ProductRepository
	rdb         *redis.Client
}

// NewProductService creates a new instance of ProductService. rdb may be
// nil, which disables the read-through cache.
func NewProductService(productRepo *repository.ProductRepository, rdb *redis.Client) *ProductService {
	return &ProductService{productRepo: productRepo, rdb: rdb}
}

func (s *ProductService) ListProducts(ctx context.Context, sort string, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	products, err := s.productRepo.ListProducts(ctx, sort, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing products")
		return nil, err
	}
	return products, nil
}

// GetProduct returns one product, serving from the Redis cache when the
// entry is warm.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	key := fmt.Sprintf("product:%d", id)
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error reading product %d from cache", id)
		}
		if cached != "" {
			var product entity.Product
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
			logger.Warn().Msgf("Dropping unreadable cache entry for product %d", id)
		}
	}

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting product %d", id)
		}
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(product); err == nil {
			if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
				logger.Error().Err(err).Msgf("Error caching product %d", id)
			}
		}
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product *entity.Product) (int, error) {
	if err := validateProduct(product); err != nil {
		return 0, err
	}
	id, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return 0, err
	}
	return id, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *entity.Product) error {
	if product.ID <= 0 {
		return validation("product id is required")
	}
	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		logger.Error().Err(err).Msgf("Error updating product %d", product.ID)
		return err
	}
	s.invalidate(ctx, product.ID)
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error deleting product %d", id)
		}
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func validateProduct(product *entity.Product) error {
	if product.Title == "" {
		return validation("title is required")
	}
	if product.Price < 0 {
		return validation("price must not be negative")
	}
	if product.Stock < 0 {
		return validation("stock must not be negative")
	}
	if !product.Format.Valid() {
		return validation("invalid format")
	}
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id int) {
	if s.rdb == nil {
		return
	}
	key := fmt.Sprintf("product:%d", id)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error invalidating cache for product %d", id)
	}
}
