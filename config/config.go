package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT              string
	DB_URL            string
	JWT_SECRET        string
	REVIEWER_PASSWORD string

	CORS_ORIGIN string
	PUBLIC_URL  string
	UPLOAD_DIR  string

	SMTP_HOST     string
	SMTP_PORT     string
	SMTP_FROM     string
	SMTP_PASSWORD string

	REDIS_ADDR string
	STATS_CRON string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	REVIEWER_PASSWORD = mustEnv("REVIEWER_PASSWORD")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	PUBLIC_URL = getEnv("PUBLIC_URL", "http://localhost:"+PORT)
	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads")

	// SMTP is optional; the mailer degrades to a logging no-op when unset.
	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")

	REDIS_ADDR = getEnv("REDIS_ADDR", "")
	STATS_CRON = getEnv("STATS_CRON", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
