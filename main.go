package main

import (
	"log"

	"github.com/anshurajlive/Assetivo/config"
	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/middleware"
	documentRoutes "github.com/anshurajlive/Assetivo/routers/documentRoutes"
	propertyRoutes "github.com/anshurajlive/Assetivo/routers/propertyRoutes"
	reminderRoutes "github.com/anshurajlive/Assetivo/routers/reminderRoutes"
	rentRoutes "github.com/anshurajlive/Assetivo/routers/rentRoutes"
	tenantRoutes "github.com/anshurajlive/Assetivo/routers/tenantRoutes"
	userRoutes "github.com/anshurajlive/Assetivo/routers/userRoutes"
	"github.com/anshurajlive/Assetivo/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if config.AppConfig.SeedDB {
		database.SeedDb()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded documents
	app.Static("/uploads", config.AppConfig.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if config.AppConfig.AuthEnabled {
		app.Use("/api", middleware.JWTMiddleware)
	}

	userRoutes.SetupUserRoutes(app)
	propertyRoutes.SetupPropertyRoutes(app)
	tenantRoutes.SetupTenantRoutes(app)
	documentRoutes.SetupDocumentRoutes(app)
	rentRoutes.SetupRentPaymentRoutes(app)
	reminderRoutes.SetupReminderRoutes(app)

	utils.InitializeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
