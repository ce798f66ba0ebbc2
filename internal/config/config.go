package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	Environment          string
	LogLevel             string
	AlphaVantageKey      string
	MaxConcurrentFetches int
	FetchTimeout         time.Duration
}

func Load() *Config {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Environment:          getEnv("ENVIRONMENT", "production"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		AlphaVantageKey:      getEnv("ALPHA_VANTAGE_KEY", ""),
		MaxConcurrentFetches: getEnvInt("MAX_CONCURRENT_FETCHES", 10),
		FetchTimeout:         time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 5)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
