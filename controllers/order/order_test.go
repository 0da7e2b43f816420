package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestDeriveShippingCity(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"12, Green Street, Chennai, 600001", "Chennai"},
		{"Chennai", ""},
		{"Green Street, Chennai", ""},
		{"12,Green Street,  Mumbai ,400001", "Mumbai"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveShippingCity(tt.address), "address %q", tt.address)
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WithArgs(3, 7, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, err := PlaceOrder(db, PlaceOrderRequest{
		UserID:          1,
		Items:           []OrderItemInput{{ProductID: 7, Quantity: 3, Price: 49.5}},
		Subtotal:        148.5,
		TotalAmount:     148.5,
		ShippingAddress: "12, Green Street, Chennai, 600001",
		PaymentMethod:   "cod",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Chennai", order.ShippingCity)
	assert.Nil(t, order.CouponCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_WithCoupon_RecordsUsage(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "used_coupons"`).
		WithArgs(int64(5), "SAVE10").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	order, err := PlaceOrder(db, PlaceOrderRequest{
		UserID:          5,
		Items:           []OrderItemInput{{ProductID: 2, Quantity: 1, Price: 20}},
		Subtotal:        20,
		Discount:        0.10,
		CouponCode:      " save10 ",
		TotalAmount:     18,
		ShippingAddress: "4, Oak Lane, Pune, 411001",
	})

	require.NoError(t, err)
	require.NotNil(t, order.CouponCode)
	assert.Equal(t, "SAVE10", *order.CouponCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_InsufficientStock_RollsBackEverything(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	// Conditional decrement matches no row: requested 3, only 2 on hand.
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := PlaceOrder(db, PlaceOrderRequest{
		UserID:          1,
		Items:           []OrderItemInput{{ProductID: 7, Quantity: 3, Price: 49.5}},
		TotalAmount:     148.5,
		ShippingAddress: "12, Green Street, Chennai, 600001",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_DBErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := PlaceOrder(db, PlaceOrderRequest{
		UserID:          1,
		Items:           []OrderItemInput{{ProductID: 7, Quantity: 1, Price: 5}},
		TotalAmount:     5,
		ShippingAddress: "12, Green Street, Chennai, 600001",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func orderRow(id uint, userID uint, status models.OrderStatus, coupon *string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "status", "coupon_code"})
	if coupon != nil {
		rows.AddRow(id, userID, string(status), *coupon)
	} else {
		rows.AddRow(id, userID, string(status), nil)
	}
	return rows
}

func TestCancelOrder_RevertsStockAndCoupon(t *testing.T) {
	db, mock := newMockDB(t)
	coupon := "SAVE20"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(orderRow(9, 4, models.OrderStatusPending, &coupon))
	mock.ExpectExec(`UPDATE "orders" SET "status"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "used_coupons"`).
		WithArgs(int64(4), "SAVE20").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(1, 9, 7, 3, 49.5).
			AddRow(2, 9, 8, 1, 12.0))
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WithArgs(1, 8).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, err := CancelOrder(db, 9)

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOrder_WithoutCoupon_SkipsLedger(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(orderRow(3, 2, models.OrderStatusPending, nil))
	mock.ExpectExec(`UPDATE "orders" SET "status"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(1, 3, 5, 2, 9.5))
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := CancelOrder(db, 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOrder_RejectsNonPending(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled, // double cancellation cannot double-restore stock
	} {
		t.Run(string(status), func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
				WillReturnRows(orderRow(9, 4, status, nil))
			mock.ExpectRollback()

			_, err := CancelOrder(db, 9)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotCancellable)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCancelOrder_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status", "coupon_code"}))
	mock.ExpectRollback()

	_, err := CancelOrder(db, 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderHandler_ValidatesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := newMockDB(t)

	r := gin.New()
	r.POST("/orders", PlaceOrderHandler(db))

	body, _ := json.Marshal(gin.H{"user_id": 1}) // missing items and address
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderHandler_InsufficientStockIsConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	r := gin.New()
	r.POST("/orders", PlaceOrderHandler(db))

	body, _ := json.Marshal(PlaceOrderRequest{
		UserID:          1,
		Items:           []OrderItemInput{{ProductID: 7, Quantity: 3, Price: 10}},
		TotalAmount:     30,
		ShippingAddress: "12, Green Street, Chennai, 600001",
	})
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")
}

func TestCancelOrderHandler_NonPendingIsConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(orderRow(9, 4, models.OrderStatusDelivered, nil))
	mock.ExpectRollback()

	r := gin.New()
	r.PATCH("/orders/cancel/:orderID", CancelOrderHandler(db))

	req := httptest.NewRequest(http.MethodPatch, "/orders/cancel/9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
