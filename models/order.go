package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting dispatch
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // terminal
	OrderStatusCancelled OrderStatus = "cancelled" // terminal, reached only from pending
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"index;not null" json:"user_id"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	Subtotal        float64     `json:"subtotal"`
	Discount        float64     `json:"discount"`
	CouponCode      *string     `json:"coupon_code"`
	Name            string      `json:"name"`
	ShippingAddress string      `json:"shipping_address"`
	// ShippingCity is derived from ShippingAddress at placement time and
	// feeds the geo-distribution analytics.
	ShippingCity  string      `json:"shipping_city"`
	PaymentMethod string      `json:"payment_method"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	OrderDate     time.Time   `gorm:"autoCreateTime" json:"order_date"`
}

// OrderItem is immutable once created. Price is the unit price snapshotted at
// purchase time, not a reference to the live product price.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
