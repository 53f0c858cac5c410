package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"gurukul/backend/config"
	"gurukul/backend/middleware"
	"gurukul/backend/routes"
	"gurukul/backend/store"
	"gurukul/backend/store/dbstore"
	"gurukul/backend/store/memstore"
	"gurukul/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Select the storage backend. This is the only place that knows
	// which backend is running; everything downstream sees store.Store.
	var st store.Store
	if cfg.DatabaseURL != "" {
		db, err := dbstore.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Printf("WARNING: database unavailable (%v), falling back to in-memory storage", err)
			st = memstore.NewStore()
		} else {
			st = dbstore.NewStore(db)
		}
	} else {
		logger.Println("WARNING: DATABASE_URL not set, using in-memory storage")
		st = memstore.NewStore()
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
