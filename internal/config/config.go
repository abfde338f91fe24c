package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/taskline/taskline/internal/logger"
	"github.com/taskline/taskline/internal/validation"
)

// DefaultMaxLineLength bounds a single command line; longer lines are
// rejected as command errors, not fatal ones.
const DefaultMaxLineLength = 4096

// Config holds application configuration
type Config struct {
	Debug         bool   `yaml:"debug"`
	LogFormat     string `yaml:"log_format" validate:"oneof=json console"`
	MaxLineLength int    `yaml:"max_line_length" validate:"min=1"`
}

// Load loads configuration with defaults, then an optional YAML file, then
// environment variables. Environment wins over the file.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Debug:         false,
		LogFormat:     logger.LogFormatJSON,
		MaxLineLength: DefaultMaxLineLength,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Debug = getEnvBool("TASKLINE_DEBUG", cfg.Debug)
	cfg.LogFormat = getEnv("TASKLINE_LOG_FORMAT", cfg.LogFormat)
	cfg.MaxLineLength = getEnvInt("TASKLINE_MAX_LINE_LENGTH", cfg.MaxLineLength)

	if err := validation.Validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
