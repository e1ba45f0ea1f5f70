package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	Database    DatabaseConfig
	AI          AIConfig
	Streaming   StreamingConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// AIConfig holds the generative model provider settings consumed by the AI gateway.
type AIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// StreamingConfig holds the realtime transcription provider settings.
type StreamingConfig struct {
	APIKey  string
	BaseURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "aftercare"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	// The model provider key has no usable default; fail at startup rather than
	// on the first model call.
	aiConfig := AIConfig{
		APIKey:      getEnv("FEATHERLESS_API_KEY", ""),
		BaseURL:     getEnv("AI_BASE_URL", "https://api.featherless.ai/v1"),
		Model:       getEnv("AI_MODEL", "deepseek-ai/DeepSeek-V3-0324"),
		Temperature: 0.5,
	}
	if aiConfig.APIKey == "" {
		return nil, fmt.Errorf("FEATHERLESS_API_KEY is not set")
	}
	if temp := getEnv("AI_TEMPERATURE", ""); temp != "" {
		parsed, err := strconv.ParseFloat(temp, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid AI_TEMPERATURE: %w", err)
		}
		aiConfig.Temperature = parsed
	}

	streamingConfig := StreamingConfig{
		APIKey:  getEnv("ASSEMBLYAI_API_KEY", ""),
		BaseURL: getEnv("STREAMING_BASE_URL", "https://streaming.assemblyai.com/v3"),
	}

	// Return complete configuration
	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:5173"),
		Environment: getEnv("NODE_ENV", "development"),
		Database:    dbConfig,
		AI:          aiConfig,
		Streaming:   streamingConfig,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
