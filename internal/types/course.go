package types

import "github.com/celestiaorg/courses/internal/db/models"

// Course is the wire representation of a course
// Example: {"id":1,"name":"Databases","students":[3,7]}
type Course struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`

	// Ids of the enrolled students, ascending
	Students []uint `json:"students"`
}

// NewCourse converts a course model to its wire representation
func NewCourse(course *models.Course) Course {
	return Course{
		ID:       course.ID,
		Name:     course.Name,
		Students: course.StudentIDs(),
	}
}

// NewCourses converts a slice of course models, never returning nil
func NewCourses(courses []models.Course) []Course {
	out := make([]Course, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourse(&courses[i]))
	}
	return out
}
