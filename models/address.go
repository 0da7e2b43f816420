package models

// ShippingAddress is the structured address record users manage from their
// account page. Checkout renders it into the free-text shipping_address
// string carried on the order.
type ShippingAddress struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Name    string `gorm:"not null" json:"name"`
	Phone   string `json:"phone"`
	House   string `json:"house"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}
