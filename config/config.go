package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the loaded configuration
type Config struct {
	Env               string
	APIBaseURL        string
	RequestTimeout    time.Duration
	StateDir          string
	RequestsPerSecond float64
}

// Load reads configuration from the .env file and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		timeout = 10 * time.Second
	}

	rps := 0.0
	if v := os.Getenv("REQUESTS_PER_SECOND"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			rps = parsed
		}
	}

	return Config{
		Env:               getEnv("STOREFRONT_ENV", "development"),
		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:8080"),
		RequestTimeout:    timeout,
		StateDir:          getEnv("STOREFRONT_STATE_DIR", defaultStateDir()),
		RequestsPerSecond: rps,
	}
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(dir, "storefront")
}

// Helper to get an environment variable or return a default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
