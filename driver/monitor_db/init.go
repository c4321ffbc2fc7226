package monitor_db

import (
	"context"
	"fmt"
	"os"

	"intmon/config"
	"intmon/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBPool connects to the database and verifies the connection.
func InitDBPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(getDBConnectionString())
	if err != nil {
		logger.Logger.Error("Failed to parse database config", "error", err)
		return nil, err
	}
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectionTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func getDBConnectionString() string {
	if err := godotenv.Load(); err != nil {
		logger.SafeWarn("No .env file loaded", "error", err)
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnvOrDefault("DB_HOST", "localhost"),
		getEnvOrDefault("DB_PORT", "5432"),
		getEnvOrDefault("DB_USER", "devuser"),
		getEnvOrDefault("DB_PASSWORD", "devpassword"),
		getEnvOrDefault("DB_NAME", "devdb"),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
