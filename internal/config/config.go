package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	// Progress report email (SES). Empty FromEmail disables sending.
	AWSRegion  string
	FromEmail  string
	FromName   string
	EmailDebug bool
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first when
// present.
func Load() *Config {
	// Missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DATABASE_TYPE", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabasePath:   getEnv("DB_PATH", "./learnsafe.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		FromEmail:      getEnv("SES_FROM_EMAIL", ""),
		FromName:       getEnv("SES_FROM_NAME", "LearnSafe"),
		EmailDebug:     getEnv("EMAIL_DEBUG", "") == "true",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
