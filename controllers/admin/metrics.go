package adminControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

// Revenue figures only count delivered orders; pending and cancelled orders
// never contribute.

type revenueTotals struct {
	TotalSubtotal float64 `json:"total_subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// GET /admin/metrics
func GetAdminMetricsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var revenue revenueTotals
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(subtotal),0) AS total_subtotal, COALESCE(SUM(discount),0) AS total_discount, COALESCE(SUM(total_amount),0) AS total_revenue").
			Where("status = ?", models.OrderStatusDelivered).
			Scan(&revenue).Error; err != nil {
			log.Error().Err(err).Msg("failed to load revenue totals")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load KPIs"})
			return
		}

		var delivered, pending, products, users int64
		if err := db.Model(&models.Order{}).Where("status = ?", models.OrderStatusDelivered).Count(&delivered).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load KPIs"})
			return
		}
		if err := db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load KPIs"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load KPIs"})
			return
		}
		if err := db.Model(&models.User{}).Where("role <> ?", models.RoleAdmin).Count(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load KPIs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_subtotal": revenue.TotalSubtotal,
			"total_discount": revenue.TotalDiscount,
			"total_revenue":  revenue.TotalRevenue,
			"total_orders":   delivered,
			"pending_orders": pending,
			"total_products": products,
			"total_users":    users,
		})
	}
}

type recentOrderRow struct {
	ID           uint               `json:"id"`
	CustomerName string             `json:"customer_name"`
	TotalAmount  float64            `json:"total_amount"`
	Status       models.OrderStatus `json:"status"`
	OrderDate    string             `json:"order_date"`
}

// GET /admin/recent-orders
func GetRecentOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []recentOrderRow
		if err := db.Model(&models.Order{}).
			Select("orders.id, users.name AS customer_name, orders.total_amount, orders.status, orders.order_date").
			Joins("JOIN users ON orders.user_id = users.id").
			Order("orders.order_date DESC").
			Limit(5).
			Scan(&rows).Error; err != nil {
			log.Error().Err(err).Msg("failed to load recent orders")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

type topSellerRow struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	TotalSold int64  `json:"total_sold"`
}

// GET /admin/top-selling
func GetTopSellingProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []topSellerRow
		if err := db.Model(&models.OrderItem{}).
			Select("products.id, products.name, SUM(order_items.quantity) AS total_sold").
			Joins("JOIN products ON order_items.product_id = products.id").
			Group("products.id, products.name").
			Order("total_sold DESC").
			Limit(5).
			Scan(&rows).Error; err != nil {
			log.Error().Err(err).Msg("failed to load top sellers")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top selling products"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /admin/stock-alerts
func GetStockAlertsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Select("id, name, stock").
			Where("stock <= ?", 5).
			Order("stock ASC").
			Find(&products).Error; err != nil {
			log.Error().Err(err).Msg("failed to load stock alerts")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

type salesOverTimeRow struct {
	Date        string  `json:"date"`
	TotalSales  float64 `json:"total_sales"`
	TotalOrders int64   `json:"total_orders"`
}

// GET /admin/sales-over-time
// Last 14 days of sales, oldest first so charts read left to right.
func GetSalesOverTimeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []salesOverTimeRow
		if err := db.Model(&models.Order{}).
			Select("DATE(order_date) AS date, SUM(total_amount) AS total_sales, COUNT(*) AS total_orders").
			Group("DATE(order_date)").
			Order("DATE(order_date) DESC").
			Limit(14).
			Scan(&rows).Error; err != nil {
			log.Error().Err(err).Msg("failed to load sales over time")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales data"})
			return
		}
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
		c.JSON(http.StatusOK, rows)
	}
}

type categorySalesRow struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// GET /admin/category-sales
func GetCategorySalesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []categorySalesRow
		if err := db.Model(&models.OrderItem{}).
			Select("products.category, SUM(order_items.quantity * order_items.price) AS value").
			Joins("JOIN products ON order_items.product_id = products.id").
			Joins("JOIN orders ON order_items.order_id = orders.id").
			Where("orders.status = ?", models.OrderStatusDelivered).
			Group("products.category").
			Scan(&rows).Error; err != nil {
			log.Error().Err(err).Msg("failed to load category sales")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category sales"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

type geoRow struct {
	City                 string `json:"city"`
	TotalDeliveredOrders int64  `json:"total_delivered_orders"`
	TotalItemsDelivered  int64  `json:"total_items_delivered"`
}

// GET /admin/geo-distribution
// Built on the shipping_city column the order workflow derives at placement.
func GetGeoDistributionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []geoRow
		if err := db.Model(&models.Order{}).
			Select("orders.shipping_city AS city, COUNT(DISTINCT orders.id) AS total_delivered_orders, SUM(order_items.quantity) AS total_items_delivered").
			Joins("JOIN order_items ON orders.id = order_items.order_id").
			Where("orders.status = ? AND orders.shipping_city <> ''", models.OrderStatusDelivered).
			Group("orders.shipping_city").
			Order("total_items_delivered DESC").
			Limit(10).
			Scan(&rows).Error; err != nil {
			log.Error().Err(err).Msg("failed to load geo distribution")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery city data"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /admin/users
func GetAllUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var all []models.User
		if err := db.Select("id, name, email, role").
			Order("id DESC").
			Find(&all).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch users")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		users := make([]models.User, 0)
		admins := make([]models.User, 0)
		for _, u := range all {
			if u.Role == models.RoleAdmin {
				admins = append(admins, u)
			} else {
				users = append(users, u)
			}
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "admins": admins})
	}
}

// DELETE /admin/users/:id
// Orders and reviews are kept for reporting; only the account and its
// addresses go. The last remaining admin cannot be deleted.
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, uint(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		if user.Role == models.RoleAdmin {
			var adminCount int64
			if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
				return
			}
			if adminCount <= 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete the last admin"})
				return
			}
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.ShippingAddress{}).Error; err != nil {
				return err
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to delete user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully. All related data preserved."})
	}
}

// GET /admin/reviews
func GetAllReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []struct {
			ID          uint   `json:"id"`
			ReviewText  string `json:"review_text"`
			CreatedAt   string `json:"created_at"`
			UserName    string `json:"user_name"`
			ProductName string `json:"product_name"`
		}
		if err := db.Model(&models.Review{}).
			Select("reviews.id, reviews.review_text, reviews.created_at, users.name AS user_name, products.name AS product_name").
			Joins("JOIN users ON reviews.user_id = users.id").
			Joins("JOIN products ON reviews.product_id = products.id").
			Order("reviews.created_at DESC").
			Scan(&rows).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch reviews")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /admin/profile
func GetAdminProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admin models.User
		if err := db.Select("id, name, email, role").
			Where("role = ?", models.RoleAdmin).
			First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}
