package main

import (
	"fmt"
	"log"

	"procurement-backend/config"
	"procurement-backend/controllers"
	"procurement-backend/database"
	"procurement-backend/routes"
	"procurement-backend/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

// connectStore builds the ledger backend selected by the config.
func connectStore(cfg config.Config) storage.RowStore {
	switch cfg.Backend {
	case config.BackendMySQL:
		database.ConnectDatabase(cfg.MySQLDSN)
		return storage.NewMySQLStore(database.DB)
	default:
		return storage.NewSheetsStore(cfg.SheetID, cfg.SheetName, cfg.CredentialsFile)
	}
}

func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Println("✅ Environment loaded from .env")
	}

	cfg := config.Load()
	store := connectStore(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET, POST, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(logger.New())

	orders := controllers.NewOrderController(store, cfg)
	auth := controllers.NewAuthController(cfg)

	routes.RegisterOrderRoutes(app, orders, cfg.AuthEnabled())
	routes.RegisterAuthRoutes(app, auth)

	// Service metadata for anyone poking the root URL.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"title":       cfg.Title,
			"description": cfg.Description,
			"version":     cfg.Version,
			"server_url":  cfg.ServerURL,
		})
	})

	if cfg.AuthEnabled() {
		fmt.Println("🔐 Order endpoints require a bearer token")
	}
	fmt.Printf("🚀 %s v%s running on port %s (backend: %s)\n", cfg.Title, cfg.Version, cfg.Port, cfg.Backend)
	log.Fatal(app.Listen(":" + cfg.Port))
}
