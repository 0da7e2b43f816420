package authControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/mail"
	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
	"github.com/MukeshMurthy/E-commerce-organic-eats/verification"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifySignupRequest struct {
	VerificationID string `json:"verificationId" binding:"required"`
	Code           string `json:"code" binding:"required"`
}

// POST /auth/signup
// Direct signup without email verification, kept for tooling and seeding.
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Signup error"})
			return
		}

		role := req.Role
		if role == "" {
			role = models.RoleUser
		}
		user := models.User{Name: req.Name, Email: req.Email, Password: string(hashed), Role: role}
		if err := db.Create(&user).Error; err != nil {
			log.Error().Err(err).Msg("signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Signup error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Signup success"})
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := issueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login success",
			"token":   token,
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// POST /auth/logout
// Tokens are stateless; logout is a client-side discard.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// POST /auth/request-verification
// Step 1 of verified signup: park the details in the TTL session store and
// mail a 6-digit code. Nothing touches the users table yet.
func RequestVerificationHandler(db *gorm.DB, store *verification.Store, sender mail.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields required"})
			return
		}

		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to start verification"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to start verification"})
			return
		}

		role := req.Role
		if role == "" {
			role = models.RoleUser
		}
		code := verification.NewCode()
		id := store.Put(verification.Session{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hashed),
			Role:         role,
			Code:         code,
			TargetEmail:  req.Email,
		})

		if err := sender.SendVerificationCode(req.Email, code); err != nil {
			store.Delete(id)
			log.Error().Err(err).Msg("failed to send verification email")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send verification email"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"verificationId": id})
	}
}

// POST /auth/verify-signup
// Step 2: consume the session and create the account.
func VerifyAndSignupHandler(db *gorm.DB, store *verification.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifySignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		sess, ok := store.Get(req.VerificationID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired verification ID"})
			return
		}
		if sess.Code != req.Code {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Incorrect verification code"})
			return
		}

		user := models.User{
			Name:     sess.Name,
			Email:    sess.Email,
			Password: sess.PasswordHash,
			Role:     sess.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Error().Err(err).Msg("failed to create verified user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
			return
		}

		store.Delete(req.VerificationID)
		c.JSON(http.StatusOK, gin.H{"message": "Account created successfully"})
	}
}

func issueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
