package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/internal/services"
	"github.com/celestiaorg/courses/internal/types"
)

// StudentHandler handles HTTP requests for student operations
type StudentHandler struct {
	service *services.Student
}

// NewStudentHandler creates a new student handler instance
func NewStudentHandler(service *services.Student) *StudentHandler {
	return &StudentHandler{
		service: service,
	}
}

// ListStudents handles the request to list students
func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return badRequest(c, ErrMsgInvalidQuery, err.Error())
	}

	students, err := h.service.ListStudents(c.Context(), params.ListOptions())
	if err != nil {
		return serverError(c, ErrMsgStudentListFailed, err)
	}

	return c.JSON(types.NewStudents(students))
}

// GetStudent returns a single student
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, ErrMsgInvalidID, err.Error())
	}

	student, err := h.service.GetStudent(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, ErrMsgStudentNotFound, ErrMsgStudentGetFailed)
	}

	return c.JSON(types.NewStudent(student))
}

// CreateStudent handles the request to create a student
func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var params StudentCreateParams
	if err := c.BodyParser(&params); err != nil {
		return badRequest(c, ErrMsgInvalidReqFormat, err.Error())
	}
	if err := params.Validate(); err != nil {
		return badRequest(c, err.Error(), nil)
	}

	// Validate already rejected malformed dates
	birthDate, _ := types.ParseDate(params.BirthDate)
	student := &models.Student{
		Name:      params.Name,
		BirthDate: birthDate,
	}
	if err := h.service.CreateStudent(c.Context(), student); err != nil {
		return serverError(c, ErrMsgStudentCreateFailed, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.NewStudent(student))
}

// DeleteStudent removes a student and withdraws it from every course
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, ErrMsgInvalidID, err.Error())
	}

	if err := h.service.DeleteStudent(c.Context(), id); err != nil {
		return respondServiceError(c, err, ErrMsgStudentNotFound, ErrMsgStudentDeleteFailed)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
