package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/internal/db/repos"
	"github.com/celestiaorg/courses/internal/events"
	"github.com/celestiaorg/courses/internal/logger"
)

// Course provides business logic for course operations
type Course struct {
	repo        *repos.CourseRepository
	students    *repos.StudentRepository
	maxStudents int
	events      *events.Bus
}

// CourseUpdate describes a change to a course. Nil fields are left untouched,
// a non-nil StudentIDs replaces the enrollments (an empty slice withdraws everyone).
type CourseUpdate struct {
	Name       *string
	StudentIDs *[]uint
}

// NewCourseService creates a new course service.
// maxStudents caps enrollments per course, zero or less disables the cap.
func NewCourseService(repo *repos.CourseRepository, students *repos.StudentRepository, maxStudents int) *Course {
	return &Course{
		repo:        repo,
		students:    students,
		maxStudents: maxStudents,
	}
}

// WithEvents publishes course lifecycle events on bus
func (s *Course) WithEvents(bus *events.Bus) *Course {
	s.events = bus
	return s
}

// ListCourses lists courses matching the options
func (s *Course) ListCourses(ctx context.Context, opts *models.ListOptions) ([]models.Course, error) {
	return s.repo.List(ctx, opts)
}

// GetCourse retrieves a course by id
func (s *Course) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, notFound(ErrCourseNotFound, err)
	}
	return course, nil
}

// CreateCourse creates a course enrolling the given students
func (s *Course) CreateCourse(ctx context.Context, name string, studentIDs []uint) (*models.Course, error) {
	students, err := s.resolveStudents(ctx, studentIDs)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:     name,
		Students: students,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	logger.DebugWithFields("course created", logger.Fields{
		"course_id": course.ID,
		"students":  len(students),
	})
	s.events.Publish(events.Event{Type: events.CourseCreated, CourseID: course.ID, Students: course.StudentIDs()})
	return course, nil
}

// UpdateCourse applies the update to an existing course and returns the stored result
func (s *Course) UpdateCourse(ctx context.Context, id uint, update CourseUpdate) (*models.Course, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		course.Name = *update.Name
	}
	if update.StudentIDs != nil {
		students, err := s.resolveStudents(ctx, *update.StudentIDs)
		if err != nil {
			return nil, err
		}
		course.Students = students
	}

	if err := s.repo.Update(ctx, course, update.StudentIDs != nil); err != nil {
		return nil, notFound(ErrCourseNotFound, err)
	}

	updated, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	s.events.Publish(events.Event{Type: events.CourseUpdated, CourseID: id, Students: updated.StudentIDs()})
	return updated, nil
}

// DeleteCourse deletes a course and its enrollments
func (s *Course) DeleteCourse(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(ErrCourseNotFound, err)
	}
	s.events.Publish(events.Event{Type: events.CourseDeleted, CourseID: id})
	return nil
}

// resolveStudents loads the students behind the ids, enforcing the enrollment cap.
// Duplicate ids count once.
func (s *Course) resolveStudents(ctx context.Context, ids []uint) ([]models.Student, error) {
	unique := dedupe(ids)
	if s.maxStudents > 0 && len(unique) > s.maxStudents {
		return nil, fmt.Errorf("%w: a course accepts at most %d students, got %d",
			ErrTooManyStudents, s.maxStudents, len(unique))
	}
	if len(unique) == 0 {
		return nil, nil
	}

	students, err := s.students.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(students) != len(unique) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStudent, missingIDs(unique, students))
	}
	return students, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func missingIDs(ids []uint, found []models.Student) []uint {
	present := make(map[uint]struct{}, len(found))
	for _, student := range found {
		present[student.ID] = struct{}{}
	}
	var missing []uint
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
