package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string

	HTTP   HTTPConfig
	Engine EngineConfig
	Redis  RedisConfig
	Logger LoggerConfig
}

type HTTPConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type EngineConfig struct {
	KnowledgePath     string
	DataDir           string
	OutputPath        string
	MaxWorkers        int
	HighRiskThreshold float64
}

type RedisConfig struct {
	StreamsURL   string
	AlertStream  string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
	Output string
}

func Load() (*Config, error) {
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	maxWorkers, err := strconv.Atoi(getEnv("MAX_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_WORKERS: %w", err)
	}

	highRisk, err := strconv.ParseFloat(getEnv("HIGH_RISK_THRESHOLD", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid HIGH_RISK_THRESHOLD: %w", err)
	}

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		HTTP: HTTPConfig{
			Port:         port,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Engine: EngineConfig{
			KnowledgePath:     getEnv("KNOWLEDGE_PATH", "knowledge/company.json"),
			DataDir:           getEnv("DATA_DIR", "data"),
			OutputPath:        getEnv("OUTPUT_PATH", "risk_assessment_results.json"),
			MaxWorkers:        maxWorkers,
			HighRiskThreshold: highRisk,
		},
		Redis: RedisConfig{
			StreamsURL:   os.Getenv("REDIS_STREAMS_URL"),
			AlertStream:  getEnv("REDIS_ALERT_STREAM", "risk:alerts"),
			PoolSize:     10,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Engine.KnowledgePath == "" {
		return fmt.Errorf("KNOWLEDGE_PATH cannot be empty")
	}
	if c.Engine.MaxWorkers < 1 {
		return fmt.Errorf("MAX_WORKERS must be at least 1")
	}
	if c.Engine.HighRiskThreshold < 0 || c.Engine.HighRiskThreshold > 1 {
		return fmt.Errorf("HIGH_RISK_THRESHOLD must be within [0, 1]")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
