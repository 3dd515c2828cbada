package services

import (
	"context"
	"fmt"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/internal/db/repos"
	"github.com/celestiaorg/courses/internal/events"
)

// Student provides business logic for student operations
type Student struct {
	repo   *repos.StudentRepository
	events *events.Bus
}

// NewStudentService creates a new student service instance
func NewStudentService(repo *repos.StudentRepository) *Student {
	return &Student{
		repo: repo,
	}
}

// WithEvents publishes student lifecycle events on bus
func (s *Student) WithEvents(bus *events.Bus) *Student {
	s.events = bus
	return s
}

// ListStudents lists students matching the options
func (s *Student) ListStudents(ctx context.Context, opts *models.ListOptions) ([]models.Student, error) {
	return s.repo.List(ctx, opts)
}

// GetStudent retrieves a student by id
func (s *Student) GetStudent(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, notFound(ErrStudentNotFound, err)
	}
	return student, nil
}

// CreateStudent creates a new student
func (s *Student) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.repo.Create(ctx, student); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	s.events.Publish(events.Event{Type: events.StudentCreated, StudentID: student.ID})
	return nil
}

// DeleteStudent deletes a student, withdrawing it from every course
func (s *Student) DeleteStudent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(ErrStudentNotFound, err)
	}
	s.events.Publish(events.Event{Type: events.StudentDeleted, StudentID: id})
	return nil
}
