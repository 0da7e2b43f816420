package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/product"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProductsHandler(db))
		products.GET("/:id", productControllers.GetProductByIDHandler(db))
	}
}
