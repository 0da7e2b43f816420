package addressControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

type AddressRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	House   string `json:"house"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// POST /addresses
func AddAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		address := models.ShippingAddress{
			UserID:  req.UserID,
			Name:    req.Name,
			Phone:   req.Phone,
			House:   req.House,
			Street:  req.Street,
			City:    req.City,
			Pincode: req.Pincode,
		}
		if err := db.Create(&address).Error; err != nil {
			log.Error().Err(err).Msg("failed to save address")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// GET /addresses/:userID
func GetUserAddressesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var addresses []models.ShippingAddress
		if err := db.Where("user_id = ?", uint(userID)).
			Order("id DESC").
			Find(&addresses).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch addresses")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// PUT /addresses/:id
func UpdateAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}
		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":    req.Name,
			"phone":   req.Phone,
			"house":   req.House,
			"street":  req.Street,
			"city":    req.City,
			"pincode": req.Pincode,
		}
		res := db.Model(&models.ShippingAddress{}).Where("id = ?", uint(id)).Updates(updates)
		if res.Error != nil {
			log.Error().Err(res.Error).Msg("failed to update address")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		var address models.ShippingAddress
		if err := db.First(&address, uint(id)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// DELETE /addresses/:id
func DeleteAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}
		if err := db.Delete(&models.ShippingAddress{}, uint(id)).Error; err != nil {
			log.Error().Err(err).Msg("failed to delete address")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
	}
}
