package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/auth"
	"github.com/MukeshMurthy/E-commerce-organic-eats/mail"
	"github.com/MukeshMurthy/E-commerce-organic-eats/verification"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, store *verification.Store, sender mail.Sender) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authControllers.SignupHandler(db))
		auth.POST("/login", authControllers.LoginHandler(db))
		auth.POST("/logout", authControllers.LogoutHandler())
		auth.POST("/request-verification", authControllers.RequestVerificationHandler(db, store, sender))
		auth.POST("/verify-signup", authControllers.VerifyAndSignupHandler(db, store))
	}
}
