package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment        string
	ServerPort         string
	AttendanceAPIURL   string
	HealthAPIURL       string
	UpstreamTimeout    time.Duration
	DefaulterThreshold float64
}

// Load reads the environment, after loading .env when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found") // Non-fatal in production
	}

	cfg := &Config{
		Environment:      getEnv("ENVIRONMENT", "development"),
		ServerPort:       getEnv("PORT", "8080"),
		AttendanceAPIURL: getEnv("ATTENDANCE_API_URL", "https://fingerprintbackend.onrender.com/allattendence"),
		HealthAPIURL:     getEnv("HEALTH_API_URL", "http://localhost:3000/allhealth"),
	}

	var err error
	if cfg.UpstreamTimeout, err = getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.DefaulterThreshold, err = getEnvFloat("DEFAULTER_THRESHOLD", 75); err != nil {
		return nil, err
	}
	if !(cfg.DefaulterThreshold > 0 && cfg.DefaulterThreshold <= 100) {
		return nil, fmt.Errorf("DEFAULTER_THRESHOLD must be in (0, 100], got %v", cfg.DefaulterThreshold)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("invalid duration for %s: must be positive", key)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %w", key, err)
	}
	return parsed, nil
}
