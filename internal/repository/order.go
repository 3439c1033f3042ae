package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// CreateOrder writes the order header, its line items and the stock
// decrements as a single transaction. The decrement is guarded: a product
// whose stock cannot cover the requested quantity fails the whole order
// with ErrInsufficientStock and nothing is persisted.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order, items []entity.CheckoutItem) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	orderQuery := `INSERT INTO orders (customer_name, customer_email, customer_phone, total_amount, status) VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery, order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.TotalAmount, entity.OrderStatusNew)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, quantity, price) VALUES (?, ?, ?, ?)`
	stockQuery := `UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`
	for _, item := range items {
		_, err := tx.ExecContext(ctx, itemQuery, orderID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			tx.Rollback()
			return 0, err
		}

		res, err := tx.ExecContext(ctx, stockQuery, item.Quantity, item.ProductID, item.Quantity)
		if err != nil {
			tx.Rollback()
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return 0, err
		}
		if affected == 0 {
			tx.Rollback()
			return 0, fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	order.ID = int(orderID)
	order.Status = entity.OrderStatusNew
	return int(orderID), nil
}

// ListOrders returns one page of orders, newest first, optionally filtered
// by status. Each row carries the item count and the total recomputed from
// the line items.
func (r *OrderRepository) ListOrders(ctx context.Context, page, limit int, status entity.OrderStatus) ([]entity.OrderSummary, int, error) {
	countQuery := `SELECT COUNT(*) FROM orders`
	listQuery := `
		SELECT o.id, o.customer_name, o.customer_email, o.customer_phone, o.total_amount, o.status, o.created_at,
		       COUNT(oi.id) AS items_count,
		       COALESCE(SUM(oi.price * oi.quantity), 0) AS total_amount_calc
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id`

	var countArgs, listArgs []interface{}
	if status != "" {
		countQuery += ` WHERE status = ?`
		listQuery += ` WHERE o.status = ?`
		countArgs = append(countArgs, status)
		listArgs = append(listArgs, status)
	}
	listQuery += `
		GROUP BY o.id
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?`
	listArgs = append(listArgs, limit, pageOffset(page, limit))

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	orders, err := collectRows(rows, func(rows *sql.Rows) (entity.OrderSummary, error) {
		var o entity.OrderSummary
		err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.ItemsCount, &o.ItemsTotal)
		return o, err
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetOrderByID returns the order and its line items joined with product and
// artist details.
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*entity.OrderDetails, error) {
	orderQuery := `SELECT id, customer_name, customer_email, customer_phone, total_amount, status, created_at FROM orders WHERE id = ?`

	var order entity.Order
	err := r.db.QueryRowContext(ctx, orderQuery, id).Scan(&order.ID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone, &order.TotalAmount, &order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	itemsQuery := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       p.title, p.image_path, COALESCE(a.name, '') AS artist_name
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		LEFT JOIN artists a ON p.artist_id = a.id
		WHERE oi.order_id = ?`
	rows, err := r.db.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	items, err := collectRows(rows, func(rows *sql.Rows) (entity.OrderItemDetails, error) {
		var it entity.OrderItemDetails
		err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.ProductTitle, &it.ImagePath, &it.ArtistName)
		return it, err
	})
	if err != nil {
		return nil, err
	}

	return &entity.OrderDetails{Order: order, Items: items}, nil
}

// UpdateOrderStatus sets the order's status. Writing the current status
// again is a legal no-op from the caller's point of view, so a zero
// affected-rows result is only treated as not-found when the order row is
// genuinely absent.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int, status entity.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// MySQL reports zero affected rows for a same-value update as well,
		// so distinguish missing from unchanged.
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM orders WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
