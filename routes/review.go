package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reviewControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/review"
	"github.com/MukeshMurthy/E-commerce-organic-eats/middleware"
)

func SetupReviewRoutes(r *gin.Engine, db *gorm.DB) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("", middleware.ValidateToken, reviewControllers.PostReviewHandler(db))
		reviews.GET("/:productID", reviewControllers.GetReviewsByProductHandler(db))
		reviews.DELETE("/:id", middleware.ValidateAPIKey, reviewControllers.DeleteReviewHandler(db))
	}
}
