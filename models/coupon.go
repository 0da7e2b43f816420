package models

// UsedCoupon records that a user has consumed a coupon code. It is a fact
// record, not a balance: a row is inserted when an order using the code is
// placed and deleted again if that order is cancelled.
type UsedCoupon struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	CouponCode string `gorm:"not null" json:"coupon_code"` // stored upper-cased
}
