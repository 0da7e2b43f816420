package couponControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/coupons"
	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

type ApplyCouponRequest struct {
	UserID     uint   `json:"userId" binding:"required"`
	CouponCode string `json:"couponCode" binding:"required"`
}

// POST /coupons/apply
// Validates only; usage is recorded by order placement, and only then. A user
// may consume a given code once and at most two distinct codes overall.
func ApplyCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApplyCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		code := coupons.Normalize(req.CouponCode)
		rate, ok := coupons.Rate(code)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid coupon code"})
			return
		}

		var alreadyUsed int64
		if err := db.Model(&models.UsedCoupon{}).
			Where("user_id = ? AND coupon_code = ?", req.UserID, code).
			Count(&alreadyUsed).Error; err != nil {
			log.Error().Err(err).Msg("coupon usage lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error validating coupon"})
			return
		}
		if alreadyUsed > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You have already used this coupon"})
			return
		}

		var usedCount int64
		if err := db.Model(&models.UsedCoupon{}).
			Where("user_id = ?", req.UserID).
			Count(&usedCount).Error; err != nil {
			log.Error().Err(err).Msg("coupon count lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error validating coupon"})
			return
		}
		if usedCount >= coupons.MaxPerUser {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You can use a maximum of 2 coupons"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "discount": rate, "code": code})
	}
}
