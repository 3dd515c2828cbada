// Package fixtures builds unsaved models populated with random data.
// Persisting them is left to the caller, see test.Suite for the
// database-backed factories.
package fixtures

import (
	"fmt"
	"time"

	"github.com/Pallinder/go-randomdata"

	"github.com/celestiaorg/courses/internal/db/models"
)

// Birth dates are drawn from this range
const (
	minBirthDate = "1990-01-01"
	maxBirthDate = "2008-12-31"
)

// CourseName returns a random course title
func CourseName() string {
	return fmt.Sprintf("%s %s %d", randomdata.Adjective(), randomdata.Noun(), randomdata.Number(100, 1000))
}

// StudentName returns a random full name
func StudentName() string {
	return randomdata.FullName(randomdata.RandomGender)
}

// BirthDate returns a random date at midnight UTC
func BirthDate() time.Time {
	date, err := time.Parse(randomdata.DateOutputLayout, randomdata.FullDateInRange(minBirthDate, maxBirthDate))
	if err != nil {
		// FullDateInRange always formats with DateOutputLayout
		panic(fmt.Sprintf("fixtures: unexpected date format: %v", err))
	}
	return date.UTC()
}

// NewStudent returns an unsaved student with a random name and birth date
func NewStudent() *models.Student {
	birthDate := BirthDate()
	return &models.Student{
		Name:      StudentName(),
		BirthDate: &birthDate,
	}
}

// NewCourse returns an unsaved course with a random name enrolling the given students
func NewCourse(students ...models.Student) *models.Course {
	return &models.Course{
		Name:     CourseName(),
		Students: students,
	}
}

// PickStudents returns between one and max students chosen at random, in their original order
func PickStudents(students []models.Student, max int) []models.Student {
	if len(students) == 0 || max < 1 {
		return nil
	}
	if max > len(students) {
		max = len(students)
	}
	n := randomdata.Number(1, max+1)
	start := randomdata.Number(0, len(students)-n+1)
	picked := make([]models.Student, n)
	copy(picked, students[start:start+n])
	return picked
}
