package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock" binding:"min=0"`
	Calories    int     `json:"calories"`
}

type AdjustStockRequest struct {
	Change int `json:"change" binding:"required"`
}

// GET /admin/products
func GetAdminProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id DESC").Find(&products).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch products")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /admin/products
func AddProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product := models.Product{
			Name:        req.Name,
			Price:       req.Price,
			Category:    req.Category,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			Stock:       req.Stock,
			Calories:    req.Calories,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Error().Err(err).Msg("failed to add product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":        req.Name,
			"price":       req.Price,
			"category":    req.Category,
			"description": req.Description,
			"image_url":   req.ImageURL,
			"stock":       req.Stock,
			"calories":    req.Calories,
		}
		res := db.Model(&models.Product{}).Where("id = ?", uint(id)).Updates(updates)
		if res.Error != nil {
			log.Error().Err(res.Error).Msg("failed to update product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if err := db.Delete(&models.Product{}, uint(id)).Error; err != nil {
			log.Error().Err(err).Msg("failed to delete product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// PATCH /admin/products/:id/stock
// Same conditional-update discipline as the order workflow: the adjustment
// only applies when it cannot drive stock negative.
func AdjustProductStockHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var req AdjustStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		res := db.Model(&models.Product{}).
			Where("id = ? AND stock + ? >= 0", uint(id), req.Change).
			UpdateColumn("stock", gorm.Expr("stock + ?", req.Change))
		if res.Error != nil {
			log.Error().Err(res.Error).Msg("failed to adjust stock")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if res.RowsAffected == 0 {
			var count int64
			db.Model(&models.Product{}).Where("id = ?", uint(id)).Count(&count)
			if count == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": "Adjustment would make stock negative"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
