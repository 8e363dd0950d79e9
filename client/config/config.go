// Package config loads the client-side settings.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"ecoally/client/session"
)

type Config struct {
	APIBaseURL string
	TokenPath  string
	Env        string
}

// Load reads configuration from .env and the environment, with defaults
// suitable for a local backend.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		APIBaseURL: getEnv("ECO_API_URL", "http://localhost:9090"),
		TokenPath:  getEnv("ECO_TOKEN_PATH", session.DefaultPath()),
		Env:        getEnv("ECO_ENV", "development"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
