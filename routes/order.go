package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/order"
	"github.com/MukeshMurthy/E-commerce-organic-eats/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Live order event feed for the admin dashboard; the browser
		// websocket handshake cannot carry an Authorization header.
		orders.GET("/ws", orderControllers.OrderFeedHandler)

		orders.Use(middleware.ValidateToken)

		// Place a new order (transactional: order + items + stock + coupon)
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Orders for one user, newest first, items nested
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))

		// Cancel a pending order and revert stock/coupon
		orders.PATCH("/cancel/:orderID", orderControllers.CancelOrderHandler(db))

		// PDF invoice, delivered orders only
		orders.GET("/invoice/:orderID", orderControllers.DownloadInvoiceHandler(db))
	}
}
