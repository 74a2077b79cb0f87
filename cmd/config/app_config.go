package config

import (
	"PantryTrack/internal/api/handlers"
	"PantryTrack/internal/api/routes"
	"PantryTrack/internal/utils"
	"PantryTrack/pkg/collection"
	"PantryTrack/pkg/digest"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	app.Use(cors.New())

	// Repository
	collectionRepository := collection.NewCollectionRepository(db)

	// Service
	collectionService := collection.NewCollectionService(collectionRepository)
	digestService := digest.NewDigestService()

	// Handler
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	healthHandler := handlers.NewHealthHandler()
	digestHandler := handlers.NewDigestHandler(collectionService, digestService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		CollectionHandler: collectionHandler,
		HealthHandler:     healthHandler,
		DigestHandler:     digestHandler,
	}
	routesConfig.Setup()
	return app, nil
}
