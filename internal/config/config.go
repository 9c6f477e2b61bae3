package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds everything the portal engine needs at startup.
type Config struct {
	Port                 string        `yaml:"port" validate:"required,numeric"`
	RemoteBaseURL        string        `yaml:"remote_base_url" validate:"required,url"`
	RemoteTimeout        time.Duration `yaml:"remote_timeout" validate:"gt=0"`
	JWTSecret            string        `yaml:"jwt_secret" validate:"required"`
	CORSAllowedOrigins   []string      `yaml:"cors_allowed_origins" validate:"min=1,dive,required"`
	SessionIdleTTL       time.Duration `yaml:"session_idle_ttl" validate:"gt=0"`
	SessionSweepSchedule string        `yaml:"session_sweep_schedule" validate:"required"`
	LogLevel             string        `yaml:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

// Defaults mirror a local development setup against the portal backend.
func Defaults() Config {
	return Config{
		Port:                 "8090",
		RemoteBaseURL:        "http://localhost:8080/api",
		RemoteTimeout:        10 * time.Second,
		JWTSecret:            "dev-secret",
		CORSAllowedOrigins:   []string{"http://localhost:5173"},
		SessionIdleTTL:       30 * time.Minute,
		SessionSweepSchedule: "@every 5m",
		LogLevel:             "info",
	}
}

// LoadConfig reads .env (if present), then the optional YAML file named by
// CONFIG_PATH, then environment variables, and validates the result.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	cfg := Defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.RemoteBaseURL = strings.TrimRight(cfg.RemoteBaseURL, "/")

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.RemoteBaseURL = getEnv("REMOTE_BASE_URL", cfg.RemoteBaseURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.SessionSweepSchedule = getEnv("SESSION_SWEEP_SCHEDULE", cfg.SessionSweepSchedule)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	var err error
	if cfg.RemoteTimeout, err = getEnvDuration("REMOTE_TIMEOUT", cfg.RemoteTimeout); err != nil {
		return err
	}
	if cfg.SessionIdleTTL, err = getEnvDuration("SESSION_IDLE_TTL", cfg.SessionIdleTTL); err != nil {
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
