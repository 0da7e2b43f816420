package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	uploadControllers "github.com/MukeshMurthy/E-commerce-organic-eats/controllers/upload"
	"github.com/MukeshMurthy/E-commerce-organic-eats/coupons"
	"github.com/MukeshMurthy/E-commerce-organic-eats/mail"
	"github.com/MukeshMurthy/E-commerce-organic-eats/middleware"
	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
	"github.com/MukeshMurthy/E-commerce-organic-eats/routes"
	"github.com/MukeshMurthy/E-commerce-organic-eats/verification"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	log.Logger = logger

	logger.Info().Msg("starting application")

	db := initDatabase(logger)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.UsedCoupon{},
		&models.Review{},
		&models.ShippingAddress{},
	); err != nil {
		logger.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	coupons.Load()

	store := verification.NewStore()
	stopJanitor := store.StartJanitor(time.Minute)
	defer stopJanitor()

	sender := mail.NewSMTPSender()

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded product images
	r.Static("/images", uploadControllers.UploadDir)

	routes.SetupRoutes(r, db, store, sender)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("server running")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection from DATABASE_URL or the
// discrete DB_* variables.
func initDatabase(logger zerolog.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("DB connection failed")
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect DB")
	}
	return db
}
