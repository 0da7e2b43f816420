package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/mail"
	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
	"github.com/MukeshMurthy/E-commerce-organic-eats/verification"
)

type CheckAdminEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CreateAdminRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	AdminEmail string `json:"adminEmail" binding:"required,email"`
}

type VerifyAdminRequest struct {
	VerificationID   string `json:"verificationId" binding:"required"`
	VerificationCode string `json:"verificationCode" binding:"required"`
}

type ResendCodeRequest struct {
	VerificationID string `json:"verificationId" binding:"required"`
}

func isAdminEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("email = ? AND role = ?", email, models.RoleAdmin).
		Count(&count).Error
	return count > 0, err
}

// POST /admin/verify/check-email
func CheckAdminEmailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckAdminEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}
		isAdmin, err := isAdminEmail(db, req.Email)
		if err != nil {
			log.Error().Err(err).Msg("admin email check failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while verifying email"})
			return
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Email is not associated with any admin"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin email verified"})
	}
}

// POST /admin/verify/create
// Creating a new admin requires sign-off from an existing admin: the code is
// mailed to that admin's address, not the new account's.
func CreateAdminWithVerificationHandler(db *gorm.DB, store *verification.Store, sender mail.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		isAdmin, err := isAdminEmail(db, req.AdminEmail)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error initiating admin creation"})
			return
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Verification email must belong to an admin"})
			return
		}

		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error initiating admin creation"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error initiating admin creation"})
			return
		}

		code := verification.NewCode()
		id := store.Put(verification.Session{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hashed),
			Role:         models.RoleAdmin,
			Code:         code,
			TargetEmail:  req.AdminEmail,
		})

		if err := sender.SendVerificationCode(req.AdminEmail, code); err != nil {
			store.Delete(id)
			log.Error().Err(err).Msg("failed to send admin verification email")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error initiating admin creation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"verificationId": id})
	}
}

// POST /admin/verify/confirm
func VerifyAdminCreationHandler(db *gorm.DB, store *verification.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess, ok := store.Get(req.VerificationID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired verification ID"})
			return
		}
		if sess.Code != req.VerificationCode {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code"})
			return
		}

		admin := models.User{
			Name:     sess.Name,
			Email:    sess.Email,
			Password: sess.PasswordHash,
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Error().Err(err).Msg("failed to create admin")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
			return
		}

		store.Delete(req.VerificationID)
		c.JSON(http.StatusOK, gin.H{"message": "Admin created successfully"})
	}
}

// POST /admin/verify/resend
func ResendVerificationCodeHandler(store *verification.Store, sender mail.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResendCodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		code, ok := store.Refresh(req.VerificationID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification ID"})
			return
		}

		sess, _ := store.Get(req.VerificationID)
		if err := sender.SendVerificationCode(sess.TargetEmail, code); err != nil {
			log.Error().Err(err).Msg("failed to resend verification code")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend verification code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Verification code resent"})
	}
}
