// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go              # Run all pending migrations
// go run cmd/migrate/main.go -down        # Rollback all migrations
// go run cmd/migrate/main.go -steps 1     # Run one migration
// go run cmd/migrate/main.go -steps -1    # Rollback one migration
// go run cmd/migrate/main.go -force 1     # Force version 1
//
// DB_DRIVER=sqlite migrates the DB_SQLITE_PATH file instead of postgres.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/celestiaorg/courses/config"
	"github.com/celestiaorg/courses/internal/db"
	"github.com/celestiaorg/courses/internal/db/migrations"
	"github.com/celestiaorg/courses/internal/logger"
)

func main() {
	logger.InitializeAndConfigure()

	if err := config.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	opts := db.OptionsFromEnv()
	dbURL := db.PostgresURL(opts)
	if opts.Driver == db.DriverSQLite {
		dbURL = migrations.SQLiteURL(opts.SQLitePath)
	}

	defaults := migrations.DefaultConfig()
	var (
		dbURLFlag = flag.String("db", "", "Database URL (optional, defaults to env vars)")
		migPath   = flag.String("path", "", "Path to migration files, e.g. file://migrations (defaults to the embedded set)")
		down      = flag.Bool("down", false, "Roll back migrations")
		steps     = flag.Int("steps", 0, "Number of migrations to apply (up or down)")
		force     = flag.Int("force", -1, "Force a specific version")
		retries   = flag.Int("retries", defaults.RetryAttempts, "Number of connection retries")
		retryWait = flag.Duration("retry-wait", defaults.RetryDelay, "Wait time between retries")
	)
	flag.Parse()

	if *dbURLFlag != "" {
		dbURL = *dbURLFlag
	}

	service, err := migrations.NewMigrationService(migrations.Config{
		Driver:         opts.Driver,
		MigrationsPath: *migPath,
		DatabaseURL:    dbURL,
		RetryAttempts:  *retries,
		RetryDelay:     *retryWait,
	})
	if err != nil {
		logger.Fatalf("Failed to create migration service: %v", err)
	}

	code := run(service, *force, *steps, *down)
	if err := service.Close(); err != nil {
		logger.Warnf("Failed to close migration service: %v", err)
	}
	os.Exit(code)
}

func run(service *migrations.MigrationService, force, steps int, down bool) int {
	start := time.Now()

	switch {
	case force >= 0:
		if err := service.Force(force); err != nil {
			logger.Errorf("Failed to force version %d: %v", force, err)
			return 1
		}
		logger.Infof("Successfully forced version to %d", force)
		return 0
	case steps != 0:
		if err := service.Steps(steps); err != nil {
			logger.Errorf("Failed to apply %d steps: %v", steps, err)
			return 1
		}
		logger.Infof("Successfully applied %d steps", steps)
	case down:
		if err := service.Down(); err != nil {
			logger.Errorf("Migration rollback failed: %v", err)
			return 1
		}
	default:
		if err := service.Up(); err != nil {
			logger.Errorf("Migration failed: %v", err)
			return 1
		}
	}

	version, dirty, err := service.Version()
	if err != nil {
		logger.Warnf("Could not get final version: %v", err)
		return 0
	}
	logger.InfoWithFields("Current migration version", logger.Fields{
		"version": version,
		"dirty":   dirty,
		"elapsed": time.Since(start).String(),
	})
	return 0
}
