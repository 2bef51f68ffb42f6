package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries process-level settings resolved from the environment.
type Config struct {
	DSN  string
	Port string
}

// Load reads .env (if present) and resolves the database connection
// string and listen port.
func Load() Config {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		DSN:  resolveDSN(),
		Port: getEnv("PORT", "8080"),
	}
}

// resolveDSN prefers a full connection URL (NETLIFY_DATABASE_URL, then
// DATABASE_URL, first one present wins) and falls back to assembling a
// DSN from discrete DB_* variables.
func resolveDSN() string {
	for _, key := range []string{"NETLIFY_DATABASE_URL", "DATABASE_URL"} {
		if url := os.Getenv(key); url != "" {
			// Managed Postgres wants TLS; require encrypts without
			// verifying the server certificate.
			if !strings.Contains(url, "sslmode=") {
				if strings.Contains(url, "?") {
					return url + "&sslmode=require"
				}
				return url + "?sslmode=require"
			}
			return url
		}
	}

	// Load environment variables (with defaults)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "tripviewer")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
