package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// Checkout scenario: product 7 holds 5 units, Ivan orders 2 at 750 each.
// Expect 201, the new order id, one written line, and stock decremented
// through the guarded update.
func TestCreateOrderEndToEnd(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs("Ivan", "ivan@example.com", "", 1500.0, "new").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(12), 7, 2, 750.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products SET stock").
		WithArgs(2, 7, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{
		"customer_name": "Ivan",
		"customer_email": "ivan@example.com",
		"total_amount": 1500,
		"items": [{"product_id": 7, "quantity": 2, "price": 750}]
	}`
	rec := doJSON(e, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		OrderID    int `json:"order_id"`
		ItemsCount int `json:"items_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 12, resp.OrderID)
	require.Equal(t, 1, resp.ItemsCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderMissingFieldsIs400(t *testing.T) {
	e, mock := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/orders", `{"customer_email":"ivan@example.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The store was never touched.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderInsufficientStockIs400(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products SET stock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	body := `{
		"customer_name": "Ivan",
		"customer_email": "ivan@example.com",
		"total_amount": 7500,
		"items": [{"product_id": 7, "quantity": 10, "price": 750}]
	}`
	rec := doJSON(e, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "insufficient stock")
}

func putForm(e *echo.Echo, target, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Status transition scenario: order 12 is "new", the admin marks it
// delivered.
func TestUpdateOrderStatusDelivered(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("delivered", 12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := putForm(e, "/api/orders", "id=12&status=delivered")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"success"`)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	e, mock := newTestServer(t)

	rec := putForm(e, "/api/orders", "id=12&status=shipped")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = putForm(e, "/api/orders", "status=new")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

// Review scenario: rating 7 is out of range, nothing may be written.
func TestCreateReviewRatingOutOfRangeIs400(t *testing.T) {
	e, mock := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/reviews", `{"product_id":7,"user_name":"Ivan","rating":7}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}
