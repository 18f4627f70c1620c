// Package server implements the question supplier HTTP API: batches of
// multiple-choice questions assembled from the cache and the LLM
// generator.
package server

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the supplier server configuration.
type Config struct {
	Addr         string
	GinMode      string
	LogLevel     string
	LogFormat    string
	DefaultTopic string
	BatchSize    int
}

// LoadConfig reads configuration from environment variables with
// defaults. A .env file is loaded if present but is optional.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:         getEnv("QUIZDECK_ADDR", ":5000"),
		GinMode:      getEnv("GIN_MODE", "release"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
		DefaultTopic: getEnv("QUIZDECK_TOPIC", "general knowledge"),
		BatchSize:    getEnvInt("QUIZDECK_BATCH_SIZE", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
