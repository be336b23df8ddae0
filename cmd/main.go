package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Jason26214/MoviesApi/internal/auth"
	"github.com/Jason26214/MoviesApi/internal/config"
	"github.com/Jason26214/MoviesApi/internal/db"
	"github.com/Jason26214/MoviesApi/internal/handlers"
	"github.com/Jason26214/MoviesApi/internal/services"
	"github.com/Jason26214/MoviesApi/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg := config.Load()
	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Token manager setup failed: %v", err)
	}

	mongoDB, err := db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("%v", err)
	}

	userStore, err := storage.NewMongoUserStore(context.Background(), mongoDB)
	if err != nil {
		log.Fatalf("User store setup failed: %v", err)
	}
	movieStore := storage.NewMongoMovieStore(mongoDB)

	posterStore, err := storage.NewMinioPosterStore(cfg.Minio)
	if err != nil {
		log.Fatalf("Poster store setup failed: %v", err)
	}

	authService := services.NewAuthService(userStore, tokens)
	movieService := services.NewMovieService(movieStore, posterStore)
	reviewService := services.NewReviewService(movieStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.NewErrorHandler(appLogger),
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	handlers.New(authService, movieService, reviewService, tokens).RegisterRoutes(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}
