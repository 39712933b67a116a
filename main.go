package main

import (
	"bookwise/config"
	"bookwise/database"
	adminRoutes "bookwise/routers/adminRoutes"
	authRoutes "bookwise/routers/authRoutes"
	bookRoutes "bookwise/routers/bookRoutes"
	subscriptionRoutes "bookwise/routers/subscriptionRoutes"
	userRoutes "bookwise/routers/userRoutes"
	"bookwise/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,stripe-signature",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	bookRoutes.SetupBookRoutes(app)
	userRoutes.SetupUserRoutes(app)
	subscriptionRoutes.SetupSubscriptionRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Repairs subscription statuses that drifted from the provider
	utils.InitializeReconcileScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
