package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"edtech/config"
	adminController "edtech/controllers/admin"
	authController "edtech/controllers/auth"
	catalogController "edtech/controllers/catalog"
	feedbackController "edtech/controllers/feedback"
	learningController "edtech/controllers/learning"
	metaController "edtech/controllers/meta"
	notificationController "edtech/controllers/notification"
	walletController "edtech/controllers/wallet"
	"edtech/database"
	"edtech/middleware"
	"edtech/routers/adminRoutes"
	"edtech/routers/authRoutes"
	"edtech/routers/courseRoutes"
	"edtech/routers/learnRoutes"
	"edtech/routers/userRoutes"
	"edtech/routers/walletRoutes"
	"edtech/services/payment"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-User-ID",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	auth := middleware.NewAuth(&middleware.HeaderAuthenticator{Db: db, JWTKey: cfg.JWTKey})
	pay := payment.NewClient(cfg)

	meta := metaController.New(db, cfg)
	app.Get("/", meta.Root)
	app.Get("/test", meta.Health)
	app.Get("/schema", meta.Schema)

	authRoutes.SetupAuthRoutes(app, authController.New(db, cfg))
	courseRoutes.SetupCourseRoutes(app, catalogController.New(db), auth)
	learnRoutes.SetupLearnRoutes(app, learningController.New(db), auth)
	walletRoutes.SetupWalletRoutes(app, walletController.New(db, pay), auth)
	userRoutes.SetupUserRoutes(app, notificationController.New(db), feedbackController.New(db), auth)
	adminRoutes.SetupAdminRoutes(app, adminController.New(db), auth)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
