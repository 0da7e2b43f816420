package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/address"
	"github.com/MukeshMurthy/E-commerce-organic-eats/middleware"
)

func SetupAddressRoutes(r *gin.Engine, db *gorm.DB) {
	addresses := r.Group("/addresses")
	addresses.Use(middleware.ValidateToken)
	{
		addresses.POST("", addressControllers.AddAddressHandler(db))
		addresses.GET("/:userID", addressControllers.GetUserAddressesHandler(db))
		addresses.PUT("/:id", addressControllers.UpdateAddressHandler(db))
		addresses.DELETE("/:id", addressControllers.DeleteAddressHandler(db))
	}
}
