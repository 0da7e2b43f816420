package reviewControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

type PostReviewRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	ProductID  uint   `json:"product_id" binding:"required"`
	ReviewText string `json:"review_text" binding:"required"`
}

// POST /reviews
func PostReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PostReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		review := models.Review{
			UserID:     req.UserID,
			ProductID:  req.ProductID,
			ReviewText: req.ReviewText,
		}
		if err := db.Create(&review).Error; err != nil {
			log.Error().Err(err).Msg("failed to post review")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post review"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Review posted successfully"})
	}
}

// GET /reviews/:productID
func GetReviewsByProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").
			Where("product_id = ?", uint(productID)).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch reviews")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// DELETE /reviews/:id (admin)
func DeleteReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		res := db.Delete(&models.Review{}, uint(id))
		if res.Error != nil {
			log.Error().Err(res.Error).Msg("failed to delete review")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
