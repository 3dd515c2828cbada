// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/courses/internal/metrics"
	"github.com/celestiaorg/courses/internal/types"
	"github.com/celestiaorg/courses/pkg/api/v1/handlers"
)

/*

To keep this file organized, routes should be organized in the following way:

1. Smallest scope first (i.e. student routes before course routes)
2. Order routes in GET, POST, PUT, PATCH, DELETE order.
	a. Within this ordering, param urls (ie /:id/) should go last, otherwise fiber will interpret the route slug as that param.
3. For clarity, naming should match the action (i.e. GetCourse, DeleteCourse)

Resource paths keep their trailing slash, clients are expected to use it.

*/

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8000"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Metrics
	Metrics = "Metrics"

	// Student routes
	GetStudents   = "GetStudents"
	GetStudent    = "GetStudent"
	CreateStudent = "CreateStudent"
	DeleteStudent = "DeleteStudent"

	// Course routes
	GetCourses    = "GetCourses"
	GetCourse     = "GetCourse"
	CreateCourse  = "CreateCourse"
	ReplaceCourse = "ReplaceCourse"
	UpdateCourse  = "UpdateCourse"
	DeleteCourse  = "DeleteCourse"
)

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheMu   sync.RWMutex
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes
func RegisterRoutes(
	app *fiber.App,
	courseHandler *handlers.CourseHandler,
	studentHandler *handlers.StudentHandler,
	m *metrics.Metrics,
) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(types.HealthResponse{Status: "healthy"})
	}).Name(HealthCheck)

	app.Get("/metrics", m.Handler()).Name(Metrics)

	// API v1 routes
	v1 := app.Group(APIv1Prefix)

	// Student endpoints
	students := v1.Group("/students")
	students.Get("/", studentHandler.ListStudents).Name(GetStudents)
	students.Get("/:id/", studentHandler.GetStudent).Name(GetStudent)
	students.Post("/", studentHandler.CreateStudent).Name(CreateStudent)
	students.Delete("/:id/", studentHandler.DeleteStudent).Name(DeleteStudent)

	// Course endpoints
	courses := v1.Group("/courses")
	courses.Get("/", courseHandler.ListCourses).Name(GetCourses)
	courses.Get("/:id/", courseHandler.GetCourse).Name(GetCourse)
	courses.Post("/", courseHandler.CreateCourse).Name(CreateCourse)
	courses.Put("/:id/", courseHandler.ReplaceCourse).Name(ReplaceCourse)
	courses.Patch("/:id/", courseHandler.UpdateCourse).Name(UpdateCourse)
	courses.Delete("/:id/", courseHandler.DeleteCourse).Name(DeleteCourse)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		cache := make(map[string]string)

		app := fiber.New()
		RegisterRoutes(app, &handlers.CourseHandler{}, &handlers.StudentHandler{}, metrics.New(false))

		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				cache[route.Name] = route.Path
			}
		}

		routeCacheMu.Lock()
		routeCache = cache
		routeCacheMu.Unlock()
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	initRouteCache()

	routeCacheMu.RLock()
	defer routeCacheMu.RUnlock()
	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, url.PathEscape(value))
	}

	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// MetricsURL returns the URL for the Prometheus endpoint
func MetricsURL() string {
	return BuildURL(Metrics, nil, nil)
}

// Student route helpers

// GetStudentsURL returns the URL for listing students
func GetStudentsURL(queryParams url.Values) string {
	return BuildURL(GetStudents, nil, queryParams)
}

// GetStudentURL returns the URL for getting a student by ID
func GetStudentURL(id string) string {
	return BuildURL(GetStudent, map[string]string{"id": id}, nil)
}

// CreateStudentURL returns the URL for creating a student
func CreateStudentURL() string {
	return BuildURL(CreateStudent, nil, nil)
}

// DeleteStudentURL returns the URL for deleting a student
func DeleteStudentURL(id string) string {
	return BuildURL(DeleteStudent, map[string]string{"id": id}, nil)
}

// Course route helpers

// GetCoursesURL returns the URL for listing courses
func GetCoursesURL(queryParams url.Values) string {
	return BuildURL(GetCourses, nil, queryParams)
}

// GetCourseURL returns the URL for getting a course by ID
func GetCourseURL(id string) string {
	return BuildURL(GetCourse, map[string]string{"id": id}, nil)
}

// CreateCourseURL returns the URL for creating a course
func CreateCourseURL() string {
	return BuildURL(CreateCourse, nil, nil)
}

// ReplaceCourseURL returns the URL for a full course update
func ReplaceCourseURL(id string) string {
	return BuildURL(ReplaceCourse, map[string]string{"id": id}, nil)
}

// UpdateCourseURL returns the URL for a partial course update
func UpdateCourseURL(id string) string {
	return BuildURL(UpdateCourse, map[string]string{"id": id}, nil)
}

// DeleteCourseURL returns the URL for deleting a course
func DeleteCourseURL(id string) string {
	return BuildURL(DeleteCourse, map[string]string{"id": id}, nil)
}
