// Package services holds the business rules of the courses service
package services

import (
	"errors"

	"gorm.io/gorm"
)

// Service errors
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrTooManyStudents = errors.New("too many students")
	ErrUnknownStudent  = errors.New("unknown student")
)

// notFound tags a record-not-found error with the service level sentinel
func notFound(sentinel, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Join(sentinel, err)
	}
	return err
}
