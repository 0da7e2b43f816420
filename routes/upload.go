package routes

import (
	"github.com/gin-gonic/gin"

	uploadControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/upload"
	"github.com/MukeshMurthy/E-commerce-organic-eats/middleware"
)

func SetupUploadRoutes(r *gin.Engine) {
	r.POST("/upload", middleware.ValidateAPIKey, uploadControllers.UploadImageHandler())
}
