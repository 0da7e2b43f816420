package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/cart"
	"github.com/MukeshMurthy/E-commerce-organic-eats/middleware"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("/:userID", cartControllers.GetCartItemsHandler(db))
		cart.POST("", cartControllers.AddToCartHandler(db))
		cart.PATCH("/:cartID", cartControllers.UpdateCartItemQuantityHandler(db))
		cart.DELETE("/:cartID", cartControllers.RemoveCartItemHandler(db))
		cart.DELETE("/clear/:userID", cartControllers.ClearUserCartHandler(db))
	}
}
