package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	NodeEnv   string
	Port      string
	JWTSecret string
	Database  DatabaseConfig
	AI        AIConfig
	ERP       ERPConfig
	Export    ExportConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// AIConfig holds settings for the Gemini translation-suggestion client
type AIConfig struct {
	GeminiAPIKey    string
	GeminiModel     string
	DefaultLanguage string
}

// ERPConfig holds the XML-RPC endpoint the component/BOM sync pulls from.
// Sync stays disabled while URL is empty.
type ERPConfig struct {
	URL          string
	Database     string
	Username     string
	Password     string
	SyncInterval int // minutes
}

// ExportConfig holds PDF export settings
type ExportConfig struct {
	PublicBaseURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		NodeEnv:   getEnv("NODE_ENV", "development"),
		Port:      getEnv("PORT", "3310"),
		JWTSecret: jwtSecret,
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "manuals"),
		},
		AI: AIConfig{
			GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
			GeminiModel:     getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		},
		ERP: ERPConfig{
			URL:          os.Getenv("ERP_URL"),
			Database:     os.Getenv("ERP_DATABASE"),
			Username:     os.Getenv("ERP_USERNAME"),
			Password:     os.Getenv("ERP_PASSWORD"),
			SyncInterval: getEnvInt("ERP_SYNC_INTERVAL", 60),
		},
		Export: ExportConfig{
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3310"),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
