package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/admin"
	"github.com/MukeshMurthy/E-commerce-organic-eats/mail"
	"github.com/MukeshMurthy/E-commerce-organic-eats/middleware"
	"github.com/MukeshMurthy/E-commerce-organic-eats/verification"
)

// SetupAdminRoutes registers the API-key-protected admin surface.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store *verification.Store, sender mail.Sender) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		// Analytics / dashboard
		admin.GET("/metrics", adminControllers.GetAdminMetricsHandler(db))
		admin.GET("/recent-orders", adminControllers.GetRecentOrdersHandler(db))
		admin.GET("/top-selling", adminControllers.GetTopSellingProductsHandler(db))
		admin.GET("/stock-alerts", adminControllers.GetStockAlertsHandler(db))
		admin.GET("/sales-over-time", adminControllers.GetSalesOverTimeHandler(db))
		admin.GET("/category-sales", adminControllers.GetCategorySalesHandler(db))
		admin.GET("/geo-distribution", adminControllers.GetGeoDistributionHandler(db))

		// Orders
		admin.GET("/orders", adminControllers.GetAllOrdersHandler(db))
		admin.PATCH("/orders/:id/status", adminControllers.UpdateOrderStatusHandler(db))

		// Products
		admin.GET("/products", adminControllers.GetAdminProductsHandler(db))
		admin.POST("/products", adminControllers.AddProductHandler(db))
		admin.PUT("/products/:id", adminControllers.UpdateProductHandler(db))
		admin.DELETE("/products/:id", adminControllers.DeleteProductHandler(db))
		admin.PATCH("/products/:id/stock", adminControllers.AdjustProductStockHandler(db))
		admin.GET("/products/export", adminControllers.ExportProductsToExcelHandler(db))

		// Users / reviews / profile
		admin.GET("/users", adminControllers.GetAllUsersHandler(db))
		admin.DELETE("/users/:id", adminControllers.DeleteUserHandler(db))
		admin.GET("/reviews", adminControllers.GetAllReviewsHandler(db))
		admin.GET("/profile", adminControllers.GetAdminProfileHandler(db))

		// Admin creation with email verification
		admin.POST("/verify/check-email", adminControllers.CheckAdminEmailHandler(db))
		admin.POST("/verify/create", adminControllers.CreateAdminWithVerificationHandler(db, store, sender))
		admin.POST("/verify/confirm", adminControllers.VerifyAdminCreationHandler(db, store))
		admin.POST("/verify/resend", adminControllers.ResendVerificationCodeHandler(store, sender))
	}
}
