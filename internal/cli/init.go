// Package cli provides common CLI initialization utilities for cmd/couponstash.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"couponstash/internal/config"
	applog "couponstash/internal/log"
	"couponstash/internal/storage"
)

// SetupLogger initializes structured logging on stderr at the given level
// and sets it as the default logger. An empty or unknown level means info,
// so SetupLogger("") gives a logger to report configuration errors with.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	lvl, err := applog.ParseLevel(level)
	cfg.Level = lvl

	logger := applog.New(cfg)
	applog.SetDefault(logger)
	if err != nil {
		logger.Warn("Falling back to info log level", applog.FieldError, err)
	}
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

// InitSQLite initializes a SQLite repository with the given path.
// Returns the repository or exits the process on failure.
func InitSQLite(logger *applog.Logger, dbPath string) *storage.SQLiteRepository {
	sqliteRepo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", applog.FieldError, err, applog.FieldPath, dbPath)
		os.Exit(1)
	}
	return sqliteRepo
}

// GracefulShutdown returns a context cancelled on SIGINT or SIGTERM. cleanup
// runs once, after the signal and before the context is cancelled.
func GracefulShutdown(logger *applog.Logger, cleanup func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			if cleanup != nil {
				cleanup()
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
