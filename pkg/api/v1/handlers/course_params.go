package handlers

import (
	"fmt"
	"strings"
)

// CourseCreateParams defines the body for creating a course.
// ID is accepted for compatibility and ignored, ids are server assigned.
type CourseCreateParams struct {
	ID       uint   `json:"id,omitempty" form:"id"`
	Name     string `json:"name" form:"name"`
	Students []uint `json:"students,omitempty" form:"students"`
}

// Validate validates the parameters for creating a course
func (p CourseCreateParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgCourseNameRequired))
	}
	return validateStudentIDs(p.Students)
}

// CourseReplaceParams defines the body for a full course update.
// Omitted students withdraw everyone from the course.
type CourseReplaceParams = CourseCreateParams

// CourseUpdateParams defines the body for a partial course update.
// Only supplied fields change, a supplied students list replaces enrollments.
type CourseUpdateParams struct {
	Name     *string `json:"name,omitempty" form:"name"`
	Students []uint  `json:"students" form:"students"`
}

// Validate validates the parameters for a partial update
func (p CourseUpdateParams) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgCourseNameRequired))
	}
	return validateStudentIDs(p.Students)
}

func validateStudentIDs(ids []uint) error {
	for _, id := range ids {
		if id == 0 {
			return fmt.Errorf("%s", strings.ToLower(ErrMsgInvalidStudentID))
		}
	}
	return nil
}
