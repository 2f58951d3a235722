// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	MetricsPort  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI string
	MongoDB  string

	// Email
	AdminEmail       string
	EmailProvider    string // "resend" or "gmail"
	EmailFrom        string
	ResendAPIKey     string
	EmailSendTimeout time.Duration

	// Gmail (only used when EmailProvider is "gmail")
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string

	// Razorpay
	RazorpayKeyID     string
	RazorpayKeySecret string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "5002"),
		MetricsPort:  getEnv("METRICS_PORT", "9090"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "wetreck"),

		AdminEmail:       getEnv("ADMIN_EMAIL", ""),
		EmailProvider:    getEnv("EMAIL_PROVIDER", "resend"),
		EmailFrom:        getEnv("EMAIL_FROM", "onboarding@resend.dev"),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		EmailSendTimeout: time.Duration(getEnvAsInt("EMAIL_SEND_TIMEOUT", 30)) * time.Second,

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
