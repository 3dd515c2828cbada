package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/celestiaorg/courses/config"
	"github.com/celestiaorg/courses/internal/app"
	"github.com/celestiaorg/courses/internal/constants"
	"github.com/celestiaorg/courses/internal/db"
	"github.com/celestiaorg/courses/internal/events"
	"github.com/celestiaorg/courses/internal/logger"
	"github.com/celestiaorg/courses/pkg/api/v1/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}
	logger.InitializeAndConfigure()

	dbOpts := db.OptionsFromEnv()
	conn, err := db.New(dbOpts)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewBus(events.DefaultBufferSize)
	for _, eventType := range events.Types() {
		bus.Subscribe(eventType, events.AuditLog)
	}
	bus.Start(ctx)

	server, _ := app.NewApp(conn, app.Config{
		MaxStudents:    config.GetEnvInt(constants.EnvMaxStudentsPerCourse, constants.DefaultMaxStudentsPerCourse),
		RuntimeMetrics: true,
		Events:         bus,
	})

	port := config.GetEnv(constants.EnvAPIPort, routes.DefaultPort)

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")
		if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Errorf("Server shutdown failed: %v", err)
		}
	}()

	logger.InfoWithFields("Starting server", logger.Fields{
		"port":      port,
		"db_driver": dbOpts.Driver,
		"log_level": logger.Level(),
	})
	if err := server.Listen(":" + port); err != nil {
		logger.Errorf("Server stopped: %v", err)
	}

	if err := db.Close(conn); err != nil {
		logger.Errorf("Failed to close database: %v", err)
	}
}
