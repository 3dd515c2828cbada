package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/courses/internal/services"
	"github.com/celestiaorg/courses/internal/types"
)

// CourseHandler handles HTTP requests for course operations
type CourseHandler struct {
	service *services.Course
}

// NewCourseHandler creates a new course handler instance
func NewCourseHandler(service *services.Course) *CourseHandler {
	return &CourseHandler{
		service: service,
	}
}

// ListCourses godoc
// @Summary List courses
// @Description Lists courses ordered by id, optionally filtered by id and name
// @Tags courses
// @Produce json
// @Param id query int false "Course id"
// @Param name query string false "Exact course name"
// @Param limit query int false "Maximum number of courses, 0 for all"
// @Param offset query int false "Number of courses to skip"
// @Success 200 {array} types.Course
// @Failure 400 {object} types.ErrorResponse
// @Router /courses/ [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return badRequest(c, ErrMsgInvalidQuery, err.Error())
	}

	courses, err := h.service.ListCourses(c.Context(), params.ListOptions())
	if err != nil {
		return serverError(c, ErrMsgCourseListFailed, err)
	}

	return c.JSON(types.NewCourses(courses))
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} types.Course
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /courses/{id}/ [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, ErrMsgInvalidID, err.Error())
	}

	course, err := h.service.GetCourse(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, ErrMsgCourseNotFound, ErrMsgCourseGetFailed)
	}

	return c.JSON(types.NewCourse(course))
}

// CreateCourse godoc
// @Summary Create a course
// @Description Accepts JSON, urlencoded or multipart bodies. A supplied id is ignored.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body CourseCreateParams true "Course"
// @Success 201 {object} types.Course
// @Failure 400 {object} types.ErrorResponse
// @Router /courses/ [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var params CourseCreateParams
	if err := c.BodyParser(&params); err != nil {
		return badRequest(c, ErrMsgInvalidReqFormat, err.Error())
	}
	if err := params.Validate(); err != nil {
		return badRequest(c, err.Error(), nil)
	}

	course, err := h.service.CreateCourse(c.Context(), params.Name, params.Students)
	if err != nil {
		return respondServiceError(c, err, ErrMsgCourseNotFound, ErrMsgCourseCreateFailed)
	}

	return c.Status(fiber.StatusCreated).JSON(types.NewCourse(course))
}

// UpdateCourse godoc
// @Summary Partially update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course id"
// @Param request body CourseUpdateParams true "Fields to change"
// @Success 200 {object} types.Course
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /courses/{id}/ [patch]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, ErrMsgInvalidID, err.Error())
	}

	var params CourseUpdateParams
	if err := c.BodyParser(&params); err != nil {
		return badRequest(c, ErrMsgInvalidReqFormat, err.Error())
	}
	if err := params.Validate(); err != nil {
		return badRequest(c, err.Error(), nil)
	}

	update := services.CourseUpdate{Name: params.Name}
	if params.Students != nil {
		update.StudentIDs = &params.Students
	}

	course, err := h.service.UpdateCourse(c.Context(), id, update)
	if err != nil {
		return respondServiceError(c, err, ErrMsgCourseNotFound, ErrMsgCourseUpdateFailed)
	}

	return c.JSON(types.NewCourse(course))
}

// ReplaceCourse godoc
// @Summary Replace a course
// @Description Sets every field, omitted students empty the course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course id"
// @Param request body CourseReplaceParams true "Course"
// @Success 200 {object} types.Course
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /courses/{id}/ [put]
func (h *CourseHandler) ReplaceCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, ErrMsgInvalidID, err.Error())
	}

	var params CourseReplaceParams
	if err := c.BodyParser(&params); err != nil {
		return badRequest(c, ErrMsgInvalidReqFormat, err.Error())
	}
	if err := params.Validate(); err != nil {
		return badRequest(c, err.Error(), nil)
	}

	students := params.Students
	if students == nil {
		students = []uint{}
	}

	course, err := h.service.UpdateCourse(c.Context(), id, services.CourseUpdate{
		Name:       &params.Name,
		StudentIDs: &students,
	})
	if err != nil {
		return respondServiceError(c, err, ErrMsgCourseNotFound, ErrMsgCourseUpdateFailed)
	}

	return c.JSON(types.NewCourse(course))
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Param id path int true "Course id"
// @Success 204
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /courses/{id}/ [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, ErrMsgInvalidID, err.Error())
	}

	if err := h.service.DeleteCourse(c.Context(), id); err != nil {
		return respondServiceError(c, err, ErrMsgCourseNotFound, ErrMsgCourseDeleteFailed)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
