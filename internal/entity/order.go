package entity

import "time"

// OrderStatus is the fulfillment state of an order. Only the four values
// below are ever stored.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the enumerated order statuses.
// Matching is exact and case-sensitive.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPaid, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is one line of an order. Price is a snapshot taken at checkout,
// not a reference to the current product price.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"order_id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderSummary is an order row as listed in the admin panel, with the line
// item count and the total recomputed from the items.
type OrderSummary struct {
	Order
	ItemsCount int     `json:"items_count"`
	ItemsTotal float64 `json:"total_amount_calc"`
}

// OrderItemDetails is an order line joined with product and artist info for
// the admin order view.
type OrderItemDetails struct {
	OrderItem
	ProductTitle string `json:"title"`
	ImagePath    string `json:"image_path"`
	ArtistName   string `json:"artist_name"`
}

type OrderDetails struct {
	Order Order              `json:"order"`
	Items []OrderItemDetails `json:"items"`
}

// CheckoutRequest is the client payload for placing an order. IdempotentKey
// comes from the Idempotent-Key header, not the body.
type CheckoutRequest struct {
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone"`
	TotalAmount   float64        `json:"total_amount"`
	Items         []CheckoutItem `json:"items"`
	IdempotentKey string         `json:"-"`
}

type CheckoutItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Valid reports whether the line is usable: lines failing this check are
// skipped at checkout rather than failing the whole order.
func (i CheckoutItem) Valid() bool {
	return i.ProductID > 0 && i.Quantity > 0 && i.Price >= 0
}
