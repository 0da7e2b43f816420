package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	couponControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/coupon"
	"github.com/MukeshMurthy/E-commerce-organic-eats/middleware"
)

func SetupCouponRoutes(r *gin.Engine, db *gorm.DB) {
	coupons := r.Group("/coupons")
	{
		coupons.POST("/apply", middleware.ValidateToken, couponControllers.ApplyCouponHandler(db))
	}
}
