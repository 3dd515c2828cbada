// Package client provides the API client for interacting with the courses API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/internal/types"
	"github.com/celestiaorg/courses/pkg/api/v1/handlers"
	"github.com/celestiaorg/courses/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (types.HealthResponse, error)

	// Course Endpoints
	GetCourses(ctx context.Context, opts *models.ListOptions) ([]types.Course, error)
	GetCourse(ctx context.Context, id uint) (types.Course, error)
	CreateCourse(ctx context.Context, params handlers.CourseCreateParams) (types.Course, error)
	ReplaceCourse(ctx context.Context, id uint, params handlers.CourseReplaceParams) (types.Course, error)
	UpdateCourse(ctx context.Context, id uint, params handlers.CourseUpdateParams) (types.Course, error)
	DeleteCourse(ctx context.Context, id uint) error

	// Student Endpoints
	GetStudents(ctx context.Context, opts *models.ListOptions) ([]types.Student, error)
	GetStudent(ctx context.Context, id uint) (types.Student, error)
	CreateStudent(ctx context.Context, params handlers.StudentCreateParams) (types.Student, error)
	DeleteStudent(ctx context.Context, id uint) error
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodPatch:
		agent = fiber.Patch(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and processes the response
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		return responseError(statusCode, body)
	}

	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// responseError converts a non-success response into a *fiber.Error.
// The message is taken from an ErrorResponse body when there is one, the raw body otherwise.
func responseError(statusCode int, body []byte) error {
	msg := string(body)

	var errResp types.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		msg = errResp.Error
		if details, ok := errResp.Details.(string); ok && details != "" {
			msg = fmt.Sprintf("%s: %s", msg, details)
		}
	}

	return &fiber.Error{
		Code:    statusCode,
		Message: msg,
	}
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(agent, response)
}

// getQueryParams creates url.Values from ListOptions
func getQueryParams(opts *models.ListOptions) url.Values {
	q := url.Values{}
	if opts == nil {
		return q
	}

	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.ID != nil {
		q.Set("id", strconv.FormatUint(uint64(*opts.ID), 10))
	}
	if opts.Name != nil {
		q.Set("name", *opts.Name)
	}

	return q
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (types.HealthResponse, error) {
	var response types.HealthResponse
	if err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckURL(), nil, &response); err != nil {
		return types.HealthResponse{}, err
	}
	return response, nil
}

// Course methods implementation

// GetCourses lists courses matching the options
func (c *APIClient) GetCourses(ctx context.Context, opts *models.ListOptions) ([]types.Course, error) {
	endpoint := routes.GetCoursesURL(getQueryParams(opts))
	var response []types.Course
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return []types.Course{}, err
	}
	return response, nil
}

// GetCourse retrieves a course by id
func (c *APIClient) GetCourse(ctx context.Context, id uint) (types.Course, error) {
	var response types.Course
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetCourseURL(idString(id)), nil, &response); err != nil {
		return types.Course{}, err
	}
	return response, nil
}

// CreateCourse creates a new course
func (c *APIClient) CreateCourse(ctx context.Context, params handlers.CourseCreateParams) (types.Course, error) {
	var response types.Course
	if err := c.executeRequest(ctx, http.MethodPost, routes.CreateCourseURL(), params, &response); err != nil {
		return types.Course{}, err
	}
	return response, nil
}

// ReplaceCourse overwrites every field of a course
func (c *APIClient) ReplaceCourse(ctx context.Context, id uint, params handlers.CourseReplaceParams) (types.Course, error) {
	var response types.Course
	if err := c.executeRequest(ctx, http.MethodPut, routes.ReplaceCourseURL(idString(id)), params, &response); err != nil {
		return types.Course{}, err
	}
	return response, nil
}

// UpdateCourse changes the supplied fields of a course
func (c *APIClient) UpdateCourse(ctx context.Context, id uint, params handlers.CourseUpdateParams) (types.Course, error) {
	var response types.Course
	if err := c.executeRequest(ctx, http.MethodPatch, routes.UpdateCourseURL(idString(id)), params, &response); err != nil {
		return types.Course{}, err
	}
	return response, nil
}

// DeleteCourse deletes a course
func (c *APIClient) DeleteCourse(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteCourseURL(idString(id)), nil, nil)
}

// Student methods implementation

// GetStudents lists students matching the options
func (c *APIClient) GetStudents(ctx context.Context, opts *models.ListOptions) ([]types.Student, error) {
	endpoint := routes.GetStudentsURL(getQueryParams(opts))
	var response []types.Student
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return []types.Student{}, err
	}
	return response, nil
}

// GetStudent retrieves a student by id
func (c *APIClient) GetStudent(ctx context.Context, id uint) (types.Student, error) {
	var response types.Student
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetStudentURL(idString(id)), nil, &response); err != nil {
		return types.Student{}, err
	}
	return response, nil
}

// CreateStudent creates a new student
func (c *APIClient) CreateStudent(ctx context.Context, params handlers.StudentCreateParams) (types.Student, error) {
	var response types.Student
	if err := c.executeRequest(ctx, http.MethodPost, routes.CreateStudentURL(), params, &response); err != nil {
		return types.Student{}, err
	}
	return response, nil
}

// DeleteStudent deletes a student
func (c *APIClient) DeleteStudent(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteStudentURL(idString(id)), nil, nil)
}
