package config

import (
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string `json:"port"`

	// База корпуса
	CorpusDatabasePath string `json:"corpus_database_path"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Конвейер
	PipelineWorkers int `json:"pipeline_workers"`

	// Внешний разборщик свободного текста
	ParserAPIKey  string        `json:"parser_api_key"`
	ParserBaseURL string        `json:"parser_base_url"`
	ParserModel   string        `json:"parser_model"`
	ParserTimeout time.Duration `json:"parser_timeout"`

	// Поиск метаданных
	MetadataTimeout   time.Duration `json:"metadata_timeout"`
	MetadataRateLimit time.Duration `json:"metadata_rate_limit"`

	// Импорт с vak.gov.by
	VakBaseURL   string        `json:"vak_base_url"`
	VakRateLimit time.Duration `json:"vak_rate_limit"`

	// Логирование
	LogLevel string `json:"log_level"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig() (*Config, error) {
	config := &Config{
		Port: getEnv("SERVER_PORT", "9999"),

		CorpusDatabasePath: getEnv("CORPUS_DATABASE_PATH", "corpus.db"),

		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		PipelineWorkers: getEnvInt("PIPELINE_WORKERS", 10),

		ParserAPIKey:  os.Getenv("PARSER_API_KEY"),
		ParserBaseURL: getEnv("PARSER_BASE_URL", "https://openrouter.ai/api/v1"),
		ParserModel:   getEnv("PARSER_MODEL", "GLM-4.5-Air"),
		ParserTimeout: getEnvDuration("PARSER_TIMEOUT", 30*time.Second),

		MetadataTimeout:   getEnvDuration("METADATA_TIMEOUT", 10*time.Second),
		MetadataRateLimit: getEnvDuration("METADATA_RATE_LIMIT", time.Second),

		VakBaseURL:   getEnv("VAK_BASE_URL", "https://vak.gov.by"),
		VakRateLimit: getEnvDuration("VAK_RATE_LIMIT", 2*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
