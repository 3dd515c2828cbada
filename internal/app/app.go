// Package app assembles the Fiber application serving the courses API
package app

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/celestiaorg/courses/internal/api/middleware"
	"github.com/celestiaorg/courses/internal/db/repos"
	"github.com/celestiaorg/courses/internal/events"
	"github.com/celestiaorg/courses/internal/metrics"
	"github.com/celestiaorg/courses/internal/services"
	"github.com/celestiaorg/courses/pkg/api/v1/handlers"
	"github.com/celestiaorg/courses/pkg/api/v1/routes"
)

// Config controls how the application is assembled
type Config struct {
	// MaxStudents caps enrollments per course, zero or less disables the cap
	MaxStudents int
	// RuntimeMetrics adds the Go and process collectors to /metrics
	RuntimeMetrics bool
	// DisableRequestLog turns off the per request log line
	DisableRequestLog bool
	// Events receives course and student lifecycle events, nil disables publishing
	Events *events.Bus
}

// NewApp wires repositories, services, handlers and middleware on top of db
func NewApp(db *gorm.DB, cfg Config) (*fiber.App, *metrics.Metrics) {
	app := fiber.New(fiber.Config{
		AppName:               "courses",
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler,
	})

	m := metrics.New(cfg.RuntimeMetrics)

	app.Use(middleware.RequestID())
	if !cfg.DisableRequestLog {
		app.Use(middleware.Logger())
	}
	app.Use(m.Middleware())

	courseRepo := repos.NewCourseRepository(db)
	studentRepo := repos.NewStudentRepository(db)

	courseService := services.NewCourseService(courseRepo, studentRepo, cfg.MaxStudents).WithEvents(cfg.Events)
	studentService := services.NewStudentService(studentRepo).WithEvents(cfg.Events)

	routes.RegisterRoutes(
		app,
		handlers.NewCourseHandler(courseService),
		handlers.NewStudentHandler(studentService),
		m,
	)

	return app, m
}
