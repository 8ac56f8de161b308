package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	AdminPassword string
	LLMBaseURL    string
	LLMAPIKey     string
	LLMModel      string
	Environment   string
	LogLevel      string
	CORSOrigins   string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "8080"),
		MongoURI:      os.Getenv("MONGO_URL"),
		DBName:        getEnvWithDefault("DB_NAME", "famigo"),
		AdminPassword: getEnvWithDefault("ADMIN_PASSWORD", "admin123"),
		LLMBaseURL:    getEnvWithDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:     os.Getenv("LLM_API_KEY"),
		LLMModel:      getEnvWithDefault("LLM_MODEL", "gpt-4o-mini"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		CORSOrigins:   getEnvWithDefault("CORS_ORIGINS", "*"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
