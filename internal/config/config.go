package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	DataDir       string
	LogLevel      string
}

// New reads configuration once at process start. A .env file in the working
// directory is loaded first when present; real environment variables win.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "backoffice"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		LogLevel:      os.Getenv("LOGLEVEL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
