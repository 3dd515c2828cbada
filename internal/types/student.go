package types

import (
	"fmt"
	"time"

	"github.com/celestiaorg/courses/internal/db/models"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Student is the wire representation of a student
// Example: {"id":3,"name":"Ada Lovelace","birth_date":"1999-12-10"}
type Student struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date,omitempty"`
}

// NewStudent converts a student model to its wire representation
func NewStudent(student *models.Student) Student {
	out := Student{
		ID:   student.ID,
		Name: student.Name,
	}
	if student.BirthDate != nil {
		out.BirthDate = student.BirthDate.Format(DateLayout)
	}
	return out
}

// NewStudents converts a slice of student models, never returning nil
func NewStudents(students []models.Student) []Student {
	out := make([]Student, 0, len(students))
	for i := range students {
		out = append(out, NewStudent(&students[i]))
	}
	return out
}

// ParseDate parses a wire date. An empty string yields nil.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("date must use the YYYY-MM-DD format: %w", err)
	}
	return &t, nil
}
