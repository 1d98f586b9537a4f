package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Upload  UploadConfig
	Keys    APIKeys
	Ai      AIConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port                string
	Environment         string
	LogFilePath         string
	ActivityLogFilePath string
	CorsAllowedOrigins  string
	DemoUserId          string
}

type StorageConfig struct {
	Driver string // "memory" or "sqlite"
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

type APIKeys struct {
	Groq string
}

type AIConfig struct {
	LLMProvider    string // "groq" or "openai"
	LLMBaseURL     string // empty means provider default
	LLMModel       string
	Temperature    float64
	MaxTokens      int
	TimeoutSeconds int
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:                getEnv("APP_PORT", "5000"),
			Environment:         getEnv("GO_ENV", "development"),
			LogFilePath:         getEnv("LOG_FILE_PATH", "logs/app.log"),
			ActivityLogFilePath: getEnv("ACTIVITY_LOG_FILE_PATH", "logs/activity.log"),
			CorsAllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			DemoUserId:          getEnv("DEMO_USER_ID", "demo-user"),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "memory"),
		},
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "./uploads"),
			MaxBytes: getEnvAsInt64("UPLOAD_MAX_BYTES", 10*1024*1024),
		},
		Keys: APIKeys{
			Groq: getEnv("GROQ_API_KEY", getEnv("VITE_GROQ_API_KEY", "")),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "groq"),
			LLMBaseURL:     getEnv("LLM_BASE_URL", ""),
			LLMModel:       getEnv("LLM_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct"),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 2048),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 60),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
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

func getEnvAsInt64(key string, fallback int64) int64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseInt(strValue, 10, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
