package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MukeshMurthy/E-commerce-organic-eats/coupons"
	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

var (
	// ErrInsufficientStock aborts a placement whose conditional stock
	// decrement matched no row. The whole transaction rolls back: no
	// order, no items, no coupon record.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNotCancellable rejects cancellation of any order that is no
	// longer pending. Shipped and delivered orders stay as they are, and
	// a second cancellation cannot double-restore stock.
	ErrNotCancellable = errors.New("order can only be cancelled while pending")
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required"`
}

type PlaceOrderRequest struct {
	UserID          uint             `json:"user_id" binding:"required"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Subtotal        float64          `json:"subtotal"`
	Discount        float64          `json:"discount"`
	CouponCode      string           `json:"coupon_code"`
	TotalAmount     float64          `json:"total_amount" binding:"required"`
	Name            string           `json:"name"`
	ShippingAddress string           `json:"shipping_address" binding:"required"`
	PaymentMethod   string           `json:"payment_method"`
}

// -------- Helpers --------

// DeriveShippingCity pulls the city out of a "House, Street, City, Pincode"
// style address: the second-to-last comma segment, trimmed. Addresses with
// fewer than three segments yield "". Free-text parsing, kept for
// compatibility with the geo analytics; structured addresses live in the
// shipping_addresses table.
func DeriveShippingCity(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 3 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-2])
}

// -------- Core Logic --------

// PlaceOrder runs the whole placement as one transaction: the order row, one
// order_items row per line item, a conditional stock decrement per product,
// and the used_coupons record when a code was applied. Any failure, including
// an out-of-stock product, rolls back every step.
//
// The stock decrement is a single conditional UPDATE bounded by the current
// value, so concurrent checkouts against the last units of a product cannot
// drive stock negative; the loser of that race gets ErrInsufficientStock.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (models.Order, error) {
	order := models.Order{
		UserID:          req.UserID,
		TotalAmount:     req.TotalAmount,
		Subtotal:        req.Subtotal,
		Discount:        req.Discount,
		Name:            req.Name,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    DeriveShippingCity(req.ShippingAddress),
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderStatusPending,
	}
	if req.CouponCode != "" {
		code := coupons.Normalize(req.CouponCode)
		order.CouponCode = &code
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, it := range req.Items {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)

			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", it.ProductID, it.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w for product %d", ErrInsufficientStock, it.ProductID)
			}
		}

		if order.CouponCode != nil {
			used := models.UsedCoupon{UserID: req.UserID, CouponCode: *order.CouponCode}
			if err := tx.Create(&used).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// CancelOrder reverses a pending order in one transaction: status flips to
// cancelled, the used-coupon record (if any) is deleted so the code becomes
// usable again, and every item's quantity is added back to product stock.
// The increment side needs no condition; it only ever grows stock.
func CancelOrder(db *gorm.DB, orderID uint) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return ErrNotCancellable
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusCancelled).Error; err != nil {
			return err
		}

		if order.CouponCode != nil {
			if err := tx.Where("user_id = ? AND coupon_code = ?", order.UserID, *order.CouponCode).
				Delete(&models.UsedCoupon{}).Error; err != nil {
				return err
			}
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}
		for _, it := range items {
			if err := tx.Model(&models.Product{}).Where("id = ?", it.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", it.Quantity)).Error; err != nil {
				return err
			}
		}

		order.Status = models.OrderStatusCancelled
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, req)
		if err != nil {
			if errors.Is(err, ErrInsufficientStock) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			log.Error().Err(err).Uint("user_id", req.UserID).Msg("order placement failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order failed"})
			return
		}

		BroadcastOrderEvent(OrderEvent{Type: EventOrderPlaced, OrderID: order.ID, UserID: order.UserID, Status: order.Status})
		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully"})
	}
}

// GET /orders/user/:userID
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", uint(userID)).
			Preload("Items").
			Preload("Items.Product").
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch user orders")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /orders/cancel/:orderID
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := CancelOrder(db, uint(orderID))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotCancellable):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			default:
				log.Error().Err(err).Uint64("order_id", orderID).Msg("order cancellation failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			}
			return
		}

		BroadcastOrderEvent(OrderEvent{Type: EventStatusChanged, OrderID: order.ID, UserID: order.UserID, Status: order.Status})
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled and coupon/stock reverted"})
	}
}
