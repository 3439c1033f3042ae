package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

// ErrOrderFailed is what callers see when the checkout transaction fails
// for an internal reason. The underlying error is logged, not returned.
var ErrOrderFailed = errors.New("failed to create order")

// OrderService owns checkout and order administration.
type OrderService struct {
	orderRepo   *repository.OrderRepository
	events      *kafka.Writer
	rdb         *redis.Client
	verifyTotal bool
}

// NewOrderService creates a new instance of OrderService. events and rdb
// may be nil, which disables event publishing and the idempotency check.
func NewOrderService(orderRepo *repository.OrderRepository, events *kafka.Writer, rdb *redis.Client, verifyTotal bool) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		events:      events,
		rdb:         rdb,
		verifyTotal: verifyTotal,
	}
}

// Checkout places an order. Validation fails fast before any write; line
// items failing the per-item check are dropped silently and the returned
// count reflects the rows actually written.
func (s *OrderService) Checkout(ctx context.Context, req entity.CheckoutRequest) (orderID, itemsCount int, err error) {
	if req.CustomerName == "" {
		return 0, 0, validation("customer_name is required")
	}
	if req.CustomerEmail == "" {
		return 0, 0, validation("customer_email is required")
	}
	if req.TotalAmount <= 0 {
		return 0, 0, validation("total_amount is required")
	}
	if len(req.Items) == 0 {
		return 0, 0, validation("items must not be empty")
	}

	items := make([]entity.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Valid() {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return 0, 0, validation("no valid items in order")
	}

	if s.verifyTotal {
		if err := verifyOrderTotal(req.TotalAmount, items); err != nil {
			return 0, 0, err
		}
	}

	ok, err := s.claimIdempotentKey(ctx, req.IdempotentKey)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking idempotent key")
		return 0, 0, ErrOrderFailed
	}
	if !ok {
		return 0, 0, validation("order already submitted")
	}

	order := &entity.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		TotalAmount:   req.TotalAmount,
	}
	id, err := s.orderRepo.CreateOrder(ctx, order, items)
	if err != nil {
		s.releaseIdempotentKey(ctx, req.IdempotentKey)
		if errors.Is(err, repository.ErrInsufficientStock) {
			logger.Warn().Err(err).Msg("Order rejected: insufficient stock")
			return 0, 0, err
		}
		logger.Error().Err(err).Msg("Error creating order")
		return 0, 0, ErrOrderFailed
	}

	s.invalidateProducts(ctx, items)
	if err := s.publishOrderEvent(ctx, id, "created"); err != nil {
		logger.Error().Err(err).Msgf("Error publishing created event for order %d", id)
	}

	return id, len(items), nil
}

// verifyOrderTotal recomputes the order total from the surviving line items
// and rejects a client-supplied total that does not match. Decimal
// arithmetic keeps price*quantity sums exact.
func verifyOrderTotal(total float64, items []entity.CheckoutItem) error {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	if !sum.Equal(decimal.NewFromFloat(total).Round(2)) {
		return validation(fmt.Sprintf("total_amount %.2f does not match items total %s", total, sum.StringFixed(2)))
	}
	return nil
}

// UpdateStatus moves an order to the given status. Any enumerated status
// may follow any other; writing the current status again is a no-op.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) error {
	if id <= 0 {
		return validation("order id is required")
	}
	if status == "" {
		return validation("status is required")
	}
	target := entity.OrderStatus(status)
	if !target.Valid() {
		return validation("invalid status")
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, target); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		logger.Error().Err(err).Msgf("Error updating status of order %d", id)
		return err
	}

	if err := s.publishOrderEvent(ctx, id, string(target)); err != nil {
		logger.Error().Err(err).Msgf("Error publishing status event for order %d", id)
	}
	return nil
}

func (s *OrderService) ListOrders(ctx context.Context, page, limit int, status string) ([]entity.OrderSummary, entity.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var filter entity.OrderStatus
	if status != "" && status != "all" {
		filter = entity.OrderStatus(status)
		if !filter.Valid() {
			return nil, entity.Pagination{}, validation("invalid status filter")
		}
	}

	orders, total, err := s.orderRepo.ListOrders(ctx, page, limit, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders")
		return nil, entity.Pagination{}, err
	}
	return orders, entity.NewPagination(page, limit, total), nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*entity.OrderDetails, error) {
	details, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting order %d", id)
		}
		return nil, err
	}
	return details, nil
}

// claimIdempotentKey records the checkout key in Redis and reports whether
// this submission is the first one. An empty key or absent Redis client
// disables the check.
func (s *OrderService) claimIdempotentKey(ctx context.Context, key string) (bool, error) {
	if s.rdb == nil || key == "" {
		return true, nil
	}
	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	ok, err := s.rdb.SetNX(ctx, redisKey, "exists", 24*time.Hour).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// releaseIdempotentKey frees a claimed key when the order it guarded was
// never written, so a corrected resubmission is not rejected as a replay.
func (s *OrderService) releaseIdempotentKey(ctx context.Context, key string) {
	if s.rdb == nil || key == "" {
		return
	}
	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	if err := s.rdb.Del(ctx, redisKey).Err(); err != nil {
		logger.Error().Err(err).Msg("Error releasing idempotent key")
	}
}

// invalidateProducts drops cached product entries whose stock just changed.
func (s *OrderService) invalidateProducts(ctx context.Context, items []entity.CheckoutItem) {
	if s.rdb == nil {
		return
	}
	for _, item := range items {
		key := fmt.Sprintf("product:%d", item.ProductID)
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			logger.Error().Err(err).Msgf("Error invalidating cache for product %d", item.ProductID)
		}
	}
}

func (s *OrderService) publishOrderEvent(ctx context.Context, orderID int, event string) error {
	if s.events == nil {
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{
		"order_id": orderID,
		"event":    event,
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", event, orderID)),
		Value: payload,
	}
	return s.events.WriteMessages(ctx, msg)
}
