package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	InvoiceNumberTemplate string

	Assist AssistConfig
}

// AssistConfig configures the AI invoice-generation backend.
type AssistConfig struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppName:     getenv("APP_SERVICE", "facture"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		InvoiceNumberTemplate: getenv("INVOICE_NUMBER_TEMPLATE", ""),

		Assist: AssistConfig{
			Endpoint:    strings.TrimSpace(getenv("ASSIST_ENDPOINT", "")),
			APIKey:      strings.TrimSpace(getenv("ASSIST_API_KEY", "")),
			Model:       getenv("ASSIST_MODEL", "gemini-2.0-flash-001"),
			Temperature: getenvFloat("ASSIST_TEMPERATURE", 0.2),
			Timeout:     getenvDuration("ASSIST_TIMEOUT", 30*time.Second),
		},
	}

	return cfg
}

// Module wires configuration loading for the application.
var Module = fx.Module("config",
	fx.Provide(Load),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
