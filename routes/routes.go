package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/mail"
	"github.com/MukeshMurthy/E-commerce-organic-eats/verification"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *verification.Store, sender mail.Sender) {
	SetupAuthRoutes(r, db, store, sender)
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupCouponRoutes(r, db)
	SetupReviewRoutes(r, db)
	SetupAddressRoutes(r, db)
	SetupUploadRoutes(r)
	SetupAdminRoutes(r, db, store, sender)
}
