package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DatabaseURL  string // Consolidated DB Connection URL
	Port         string
	JWTSecret    string
	ApifyToken   string
	GeminiAPIKey string
	OpenAIAPIKey string
	LLMProvider  string // "gemini" (default) or "openai"
	LLMModel     string // optional model override per provider
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env is not present, just log it
		// log.Printf("Warning: .env file not found, reading from environment")
	}

	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		ApifyToken:   getEnv("APIFY_TOKEN", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		LLMProvider:  getEnv("LLM_PROVIDER", "gemini"),
		LLMModel:     getEnv("LLM_MODEL", ""),
	}, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
