package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"socialspace/database"
	_ "socialspace/docs"
	"socialspace/internal/blob"
	"socialspace/internal/routes"
	"socialspace/internal/service"
	"socialspace/internal/store"
)

// @title           socialspace API
// @version         1.0
// @description     Minimal social backend: users, posts, author-privacy visibility.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := database.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// --- MongoDB Connection ---
	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	records := store.NewMongo(client, cfg.DBName)
	if err := records.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Blob Storage ---
	var uploader blob.Uploader = blob.Unconfigured{}
	if cfg.BlobConnString != "" {
		az, err := blob.NewAzure(cfg.BlobConnString, cfg.BlobContainer)
		if err != nil {
			log.Fatalf("blob client failed: %v", err)
		}
		uploader = az
	} else {
		log.Println("blob storage not configured; media uploads disabled")
	}

	// --- Fiber App Setup ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Store:     records,
		Posts:     service.NewPostService(records, uploader),
		JWTSecret: cfg.JWTSecret,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
