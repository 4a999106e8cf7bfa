package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Ai     AIConfig
	Azure  AzureConfig
	Events EventsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AIConfig struct {
	LLMProvider           string // "azure" or "ollama"
	LLMModel              string // e.g. "gpt-4o-mini", "llama3"
	OllamaBaseURL         string
	RequestTimeoutSeconds int
}

type AzureConfig struct {
	Endpoint   string
	APIKey     string
	APIVersion string
}

type EventsConfig struct {
	ComplaintTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Ai: AIConfig{
			LLMProvider:           getEnv("LLM_PROVIDER", "azure"),
			LLMModel:              getEnv("LLM_MODEL", "gpt-4o-mini"),
			OllamaBaseURL:         getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RequestTimeoutSeconds: getEnvAsInt("LLM_REQUEST_TIMEOUT_SECONDS", 60),
		},
		Azure: AzureConfig{
			Endpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
			APIKey:     getEnv("AZURE_OPENAI_API_KEY", ""),
			APIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-02-15-preview"),
		},
		Events: EventsConfig{
			ComplaintTopic: getEnv("COMPLAINT_EVENTS_TOPIC_NAME", "COMPLAINT_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
