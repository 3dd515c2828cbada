// Package handlers provides HTTP request handling
package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/courses/internal/api/middleware"
	"github.com/celestiaorg/courses/internal/logger"
	"github.com/celestiaorg/courses/internal/services"
	"github.com/celestiaorg/courses/internal/types"
)

// Common error messages
const (
	ErrMsgInvalidReqFormat = "Invalid request format"
	ErrMsgInvalidQuery     = "Invalid query parameters"
	ErrMsgInvalidID        = "Invalid id"
	ErrMsgNegativeID       = "Id must be a positive number"
	ErrMsgNegativeLimit    = "Limit must be a non-negative number"
	ErrMsgNegativeOffset   = "Offset must be a non-negative number"
	ErrMsgRouteNotFound    = "Route not found"
	ErrMsgInternal         = "Internal server error"
)

// Course error messages
const (
	ErrMsgCourseNameRequired = "Course name is required"
	ErrMsgCourseNotFound     = "Course not found"
	ErrMsgCourseListFailed   = "Failed to list courses"
	ErrMsgCourseGetFailed    = "Failed to get course"
	ErrMsgCourseCreateFailed = "Failed to create course"
	ErrMsgCourseUpdateFailed = "Failed to update course"
	ErrMsgCourseDeleteFailed = "Failed to delete course"
	ErrMsgInvalidStudentID   = "Student ids must be positive numbers"
	ErrMsgTooManyStudents    = "Too many students for a course"
	ErrMsgUnknownStudent     = "Unknown student"
)

// Student error messages
const (
	ErrMsgStudentNameRequired = "Student name is required"
	ErrMsgStudentNotFound     = "Student not found"
	ErrMsgStudentListFailed   = "Failed to list students"
	ErrMsgStudentGetFailed    = "Failed to get student"
	ErrMsgStudentCreateFailed = "Failed to create student"
	ErrMsgStudentDeleteFailed = "Failed to delete student"
	ErrMsgInvalidBirthDate    = "Birth date must use the YYYY-MM-DD format"
)

// respond writes an error body tagged with the request id
func respond(c *fiber.Ctx, status int, body types.ErrorResponse) error {
	return c.Status(status).JSON(body.WithRequestID(middleware.RequestIDFromCtx(c)))
}

func badRequest(c *fiber.Ctx, msg string, details interface{}) error {
	body := types.ErrInvalidInput(msg)
	if details != nil {
		body = body.WithDetails(details)
	}
	return respond(c, fiber.StatusBadRequest, body)
}

func notFound(c *fiber.Ctx, msg string) error {
	return respond(c, fiber.StatusNotFound, types.ErrNotFound(msg))
}

func serverError(c *fiber.Ctx, msg string, err error) error {
	logger.ErrorWithFields(msg, logger.Fields{
		"error":      err.Error(),
		"path":       c.Path(),
		"request_id": middleware.RequestIDFromCtx(c),
	})
	return respond(c, fiber.StatusInternalServerError, types.ErrServer(msg))
}

// respondServiceError maps service errors to statuses
func respondServiceError(c *fiber.Ctx, err error, notFoundMsg, failedMsg string) error {
	switch {
	case errors.Is(err, services.ErrCourseNotFound), errors.Is(err, services.ErrStudentNotFound):
		return notFound(c, notFoundMsg)
	case errors.Is(err, services.ErrTooManyStudents):
		return badRequest(c, ErrMsgTooManyStudents, err.Error())
	case errors.Is(err, services.ErrUnknownStudent):
		return badRequest(c, ErrMsgUnknownStudent, err.Error())
	default:
		return serverError(c, failedMsg, err)
	}
}

// ErrorHandler renders errors that escaped the handlers, such as unmatched
// routes or disallowed methods, as an ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := ErrMsgInternal

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	switch {
	case code == fiber.StatusNotFound:
		return respond(c, code, types.ErrNotFound(ErrMsgRouteNotFound).WithDetails(msg))
	case code >= fiber.StatusInternalServerError:
		return serverError(c, ErrMsgInternal, err)
	default:
		return respond(c, code, types.ErrInvalidInput(msg))
	}
}
