package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Backend BackendConfig
	Payment PaymentConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type SessionConfig struct {
	Secret string
}

// BackendConfig points at the remote REST API that owns events, tickets,
// registrations and the payment integration.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// PaymentConfig holds the URLs the payment provider sends the browser back to
type PaymentConfig struct {
	SuccessURL   string
	CancelledURL string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_API_URL", "http://localhost:7198/api/v1"),
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 30),
		},
		Payment: PaymentConfig{
			SuccessURL:   getEnv("PAYMENT_SUCCESS_URL", "http://localhost:8080/payment/success"),
			CancelledURL: getEnv("PAYMENT_CANCELLED_URL", "http://localhost:8080/payment/cancelled"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
