package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	if err := validateIngestConfig(&config.Ingest); err != nil {
		return fmt.Errorf("ingest config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ShutdownTimeout: %v", config.ShutdownTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.ClientTimeout <= 0 {
		return fmt.Errorf("client timeout must be positive, got %v", config.ClientTimeout)
	}

	if config.MaxResponseBytes < 1024 {
		return fmt.Errorf("max response bytes must be at least 1KiB, got %d", config.MaxResponseBytes)
	}

	return nil
}

func validateIngestConfig(config *IngestConfig) error {
	if config.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", config.RefreshInterval)
	}

	if config.RefreshTimeout <= 0 {
		return fmt.Errorf("refresh timeout must be positive, got %v", config.RefreshTimeout)
	}

	if config.BatchConcurrency < 1 {
		return fmt.Errorf("batch concurrency must be at least 1, got %d", config.BatchConcurrency)
	}

	if config.SnippetLength < 1 {
		return fmt.Errorf("snippet length must be at least 1, got %d", config.SnippetLength)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}
