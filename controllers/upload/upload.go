package uploadControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UploadDir is where product images land; main serves it at /images.
const UploadDir = "public/images"

// POST /upload
// Accepts a multipart "image" field and returns the public URL for it.
func UploadImageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		if err := os.MkdirAll(UploadDir, 0755); err != nil {
			log.Error().Err(err).Msg("failed to create upload directory")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}

		filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
		dest := filepath.Join(UploadDir, filename)
		if err := c.SaveUploadedFile(file, dest); err != nil {
			log.Error().Err(err).Msg("failed to save uploaded image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}

		baseURL := os.Getenv("PUBLIC_BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}
		c.JSON(http.StatusOK, gin.H{"imageUrl": baseURL + "/images/" + filename})
	}
}
