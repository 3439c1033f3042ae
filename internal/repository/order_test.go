package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCreateOrderCommits(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db)

	order := &entity.Order{
		CustomerName:  "Ivan",
		CustomerEmail: "ivan@example.com",
		TotalAmount:   1500,
	}
	items := []entity.CheckoutItem{{ProductID: 7, Quantity: 2, Price: 750}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs("Ivan", "ivan@example.com", "", 1500.0, "new").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(42), 7, 2, 750.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products SET stock").
		WithArgs(2, 7, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.CreateOrder(context.Background(), order, items)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected order id 42, got %d", id)
	}
	if order.Status != entity.OrderStatusNew {
		t.Fatalf("expected status new, got %s", order.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db)

	order := &entity.Order{CustomerName: "Ivan", CustomerEmail: "ivan@example.com", TotalAmount: 1500}
	items := []entity.CheckoutItem{
		{ProductID: 7, Quantity: 1, Price: 750},
		{ProductID: 9, Quantity: 1, Price: 750},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(42), 7, 1, 750.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products SET stock").
		WithArgs(1, 7, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(42), 9, 1, 750.0).
		WillReturnError(errors.New("foreign key constraint fails"))
	mock.ExpectRollback()

	if _, err := repo.CreateOrder(context.Background(), order, items); err == nil {
		t.Fatal("expected error after second item insert failure")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateOrderRollsBackOnInsufficientStock(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db)

	order := &entity.Order{CustomerName: "Ivan", CustomerEmail: "ivan@example.com", TotalAmount: 7500}
	items := []entity.CheckoutItem{{ProductID: 7, Quantity: 10, Price: 750}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products SET stock").
		WithArgs(10, 7, 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), order, items)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("delivered", 12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateOrderStatus(context.Background(), 12, entity.OrderStatusDelivered); err != nil {
		t.Fatalf("update status: %v", err)
	}
}

func TestUpdateOrderStatusSameValueIsNoOp(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db)

	// MySQL reports zero affected rows for a same-value write; the order
	// still exists, so this must not be a not-found.
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("new", 12).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM orders").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	if err := repo.UpdateOrderStatus(context.Background(), 12, entity.OrderStatusNew); err != nil {
		t.Fatalf("same-status update: %v", err)
	}
}

func TestUpdateOrderStatusMissingOrder(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("paid", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM orders").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	err := repo.UpdateOrderStatus(context.Background(), 99, entity.OrderStatusPaid)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("paid").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT o.id").
		WithArgs("paid", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_name", "customer_email", "customer_phone", "total_amount", "status", "created_at", "items_count", "total_amount_calc",
		}).AddRow(3, "Ivan", "ivan@example.com", "", 1500.0, "paid", now, 2, 1500.0))

	orders, total, err := repo.ListOrders(context.Background(), 1, 10, entity.OrderStatusPaid)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected 1 order, got total=%d len=%d", total, len(orders))
	}
	if orders[0].ItemsCount != 2 || orders[0].ItemsTotal != 1500 {
		t.Fatalf("unexpected aggregates: %+v", orders[0])
	}
}

func TestGetOrderByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery("SELECT id, customer_name").
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOrderByID(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
