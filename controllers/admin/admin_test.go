package adminControllers

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

func TestMapOrderStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    models.OrderStatus
		wantErr bool
	}{
		{"pending", models.OrderStatusPending, false},
		{"Shipped ", models.OrderStatusShipped, false},
		{"DELIVERED", models.OrderStatusDelivered, false},
		{"cancelled", models.OrderStatusCancelled, false},
		{"returned", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := mapOrderStatus(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestUpdateOrderStatusHandler_RejectsUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	r := gin.New()
	r.PATCH("/admin/orders/:id/status", UpdateOrderStatusHandler(db))

	body, _ := json.Marshal(UpdateOrderStatusRequest{Status: "refunded"})
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/3/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustProductStockHandler_AppliesChange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WithArgs(-2, 7, -2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stock"}).AddRow(7, "Oat Granola", 3))

	r := gin.New()
	r.PATCH("/admin/products/:id/stock", AdjustProductStockHandler(db))

	body, _ := json.Marshal(AdjustStockRequest{Change: -2})
	req := httptest.NewRequest(http.MethodPatch, "/admin/products/7/stock", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustProductStockHandler_RefusesNegativeResult(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	// Conditional update matches nothing; the product itself exists.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "stock"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	r := gin.New()
	r.PATCH("/admin/products/:id/stock", AdjustProductStockHandler(db))

	body, _ := json.Marshal(AdjustStockRequest{Change: -10})
	req := httptest.NewRequest(http.MethodPatch, "/admin/products/7/stock", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
