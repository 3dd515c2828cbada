package test

import (
	"time"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/test/fixtures"
)

// DefaultM2MQuantity is how many students WithM2M enrolls in each course
const DefaultM2MQuantity = 5

// FactoryOption customizes the records a factory persists
type FactoryOption func(*factoryConfig)

type factoryConfig struct {
	name      *string
	birthDate *time.Time
	students  int
	enrolled  []models.Student
}

// WithName gives every generated record the same name
func WithName(name string) FactoryOption {
	return func(c *factoryConfig) {
		c.name = &name
	}
}

// WithBirthDate gives every generated student the same birth date
func WithBirthDate(date time.Time) FactoryOption {
	return func(c *factoryConfig) {
		c.birthDate = &date
	}
}

// WithStudents creates n fresh students for each generated course and enrolls them
func WithStudents(n int) FactoryOption {
	return func(c *factoryConfig) {
		c.students = n
	}
}

// WithM2M populates the course students relation with DefaultM2MQuantity students
func WithM2M() FactoryOption {
	return WithStudents(DefaultM2MQuantity)
}

// WithEnrolled enrolls existing students in every generated course
func WithEnrolled(students ...models.Student) FactoryOption {
	return func(c *factoryConfig) {
		c.enrolled = students
	}
}

func newFactoryConfig(opts []FactoryOption) *factoryConfig {
	cfg := &factoryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// StudentFactory persists quantity students with random data
func (s *Suite) StudentFactory(quantity int, opts ...FactoryOption) []*models.Student {
	cfg := newFactoryConfig(opts)

	students := make([]*models.Student, quantity)
	for i := range students {
		student := fixtures.NewStudent()
		if cfg.name != nil {
			student.Name = *cfg.name
		}
		if cfg.birthDate != nil {
			date := *cfg.birthDate
			student.BirthDate = &date
		}
		students[i] = student
	}

	s.Require().NoError(s.StudentRepo.CreateBatch(s.ctx, students), "Failed to create students")
	return students
}

// CourseFactory persists quantity courses with random names, inserted in order
// so their ids ascend with the returned slice.
func (s *Suite) CourseFactory(quantity int, opts ...FactoryOption) []*models.Course {
	cfg := newFactoryConfig(opts)

	courses := make([]*models.Course, quantity)
	for i := range courses {
		enrolled := append([]models.Student(nil), cfg.enrolled...)
		if cfg.students > 0 {
			for _, student := range s.StudentFactory(cfg.students) {
				enrolled = append(enrolled, *student)
			}
		}

		course := fixtures.NewCourse(enrolled...)
		if cfg.name != nil {
			course.Name = *cfg.name
		}
		courses[i] = course
	}

	s.Require().NoError(s.CourseRepo.CreateBatch(s.ctx, courses), "Failed to create courses")
	return courses
}
