package config

import (
	"os"
	"time"

	"github.com/Jason26214/MoviesApi/internal/storage"
)

// Config collects every environment-driven setting with local-dev fallbacks.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	TokenTTL  time.Duration
	Minio     storage.MinioConfig
}

func Load() Config {
	return Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  getenv("MONGO_URI", "mongodb://localhost:27017/movies_api"),
		MongoDB:   getenv("MONGO_DB", "movies_api"),
		JWTSecret: getenv("JWT_SECRET", ""),
		TokenTTL:  24 * time.Hour,
		Minio: storage.MinioConfig{
			Endpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getenv("MINIO_BUCKET", "movie-posters"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
