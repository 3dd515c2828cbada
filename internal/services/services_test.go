package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/internal/db/repos"
	"github.com/celestiaorg/courses/internal/events"
	"github.com/celestiaorg/courses/test/fixtures"
)

const testMaxStudents = 3

type ServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	ctx      context.Context
	courses  *Course
	students *Student
}

func TestServices(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(db.AutoMigrate(&models.Student{}, &models.Course{}))

	studentRepo := repos.NewStudentRepository(db)
	s.db = db
	s.ctx = context.Background()
	s.courses = NewCourseService(repos.NewCourseRepository(db), studentRepo, testMaxStudents)
	s.students = NewStudentService(studentRepo)
}

func (s *ServiceTestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *ServiceTestSuite) createStudents(n int) []uint {
	ids := make([]uint, n)
	for i := range ids {
		student := fixtures.NewStudent()
		s.Require().NoError(s.students.CreateStudent(s.ctx, student))
		ids[i] = student.ID
	}
	return ids
}

func (s *ServiceTestSuite) TestCreateCourse() {
	ids := s.createStudents(2)

	course, err := s.courses.CreateCourse(s.ctx, "Databases", append(ids, ids[0]))
	s.Require().NoError(err)
	s.NotZero(course.ID)
	s.Equal("Databases", course.Name)
	s.ElementsMatch(ids, course.StudentIDs(), "duplicate ids enroll once")

	stored, err := s.courses.GetCourse(s.ctx, course.ID)
	s.Require().NoError(err)
	s.ElementsMatch(ids, stored.StudentIDs())
}

func (s *ServiceTestSuite) TestCreateCourseTooManyStudents() {
	ids := s.createStudents(testMaxStudents + 1)

	_, err := s.courses.CreateCourse(s.ctx, "Crowded", ids)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrTooManyStudents))
	s.Contains(err.Error(), fmt.Sprintf("at most %d students", testMaxStudents))

	courses, err := s.courses.ListCourses(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(courses)
}

func (s *ServiceTestSuite) TestCreateCourseUnknownStudent() {
	ids := s.createStudents(1)

	_, err := s.courses.CreateCourse(s.ctx, "Ghosts", []uint{ids[0], 998, 999})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrUnknownStudent))
	s.Contains(err.Error(), "[998 999]")
}

func (s *ServiceTestSuite) TestUnlimitedStudents() {
	svc := NewCourseService(repos.NewCourseRepository(s.db), repos.NewStudentRepository(s.db), 0)
	ids := s.createStudents(testMaxStudents + 2)

	course, err := svc.CreateCourse(s.ctx, "Open", ids)
	s.Require().NoError(err)
	s.Len(course.Students, testMaxStudents+2)
}

func (s *ServiceTestSuite) TestUpdateCourse() {
	ids := s.createStudents(3)
	course, err := s.courses.CreateCourse(s.ctx, "Before", ids[:2])
	s.Require().NoError(err)

	name := "After"
	updated, err := s.courses.UpdateCourse(s.ctx, course.ID, CourseUpdate{Name: &name})
	s.Require().NoError(err)
	s.Equal("After", updated.Name)
	s.ElementsMatch(ids[:2], updated.StudentIDs(), "students untouched by a name-only update")

	replacement := []uint{ids[2]}
	updated, err = s.courses.UpdateCourse(s.ctx, course.ID, CourseUpdate{StudentIDs: &replacement})
	s.Require().NoError(err)
	s.Equal("After", updated.Name)
	s.Equal(replacement, updated.StudentIDs())

	empty := []uint{}
	updated, err = s.courses.UpdateCourse(s.ctx, course.ID, CourseUpdate{StudentIDs: &empty})
	s.Require().NoError(err)
	s.Empty(updated.Students)
}

func (s *ServiceTestSuite) TestUpdateCourseErrors() {
	name := "x"
	_, err := s.courses.UpdateCourse(s.ctx, 404, CourseUpdate{Name: &name})
	s.True(errors.Is(err, ErrCourseNotFound))

	course, err := s.courses.CreateCourse(s.ctx, "Limited", nil)
	s.Require().NoError(err)
	tooMany := s.createStudents(testMaxStudents + 1)
	_, err = s.courses.UpdateCourse(s.ctx, course.ID, CourseUpdate{StudentIDs: &tooMany})
	s.True(errors.Is(err, ErrTooManyStudents))
}

func (s *ServiceTestSuite) TestDeleteCourse() {
	course, err := s.courses.CreateCourse(s.ctx, "Short lived", nil)
	s.Require().NoError(err)

	s.Require().NoError(s.courses.DeleteCourse(s.ctx, course.ID))

	_, err = s.courses.GetCourse(s.ctx, course.ID)
	s.True(errors.Is(err, ErrCourseNotFound))
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	s.True(errors.Is(s.courses.DeleteCourse(s.ctx, course.ID), ErrCourseNotFound))
}

func (s *ServiceTestSuite) TestStudents() {
	student := &models.Student{Name: "Grace Hopper"}
	s.Require().NoError(s.students.CreateStudent(s.ctx, student))

	found, err := s.students.GetStudent(s.ctx, student.ID)
	s.Require().NoError(err)
	s.Equal("Grace Hopper", found.Name)

	list, err := s.students.ListStudents(s.ctx, models.ListOptions{}.WithName("Grace Hopper"))
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.students.DeleteStudent(s.ctx, student.ID))
	_, err = s.students.GetStudent(s.ctx, student.ID)
	s.True(errors.Is(err, ErrStudentNotFound))
	s.True(errors.Is(s.students.DeleteStudent(s.ctx, student.ID), ErrStudentNotFound))
}

func (s *ServiceTestSuite) TestLifecycleEvents() {
	bus := events.NewBus(events.DefaultBufferSize)
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	bus.Start(ctx)

	received := make(chan events.Event, 10)
	for _, eventType := range events.Types() {
		bus.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			received <- e
			return nil
		})
	}
	s.courses.WithEvents(bus)
	s.students.WithEvents(bus)

	next := func() events.Event {
		select {
		case e := <-received:
			return e
		case <-time.After(2 * time.Second):
			s.FailNow("timed out waiting for event")
			return events.Event{}
		}
	}

	student := &models.Student{Name: "Alan Turing"}
	s.Require().NoError(s.students.CreateStudent(s.ctx, student))
	s.Equal(events.Event{Type: events.StudentCreated, StudentID: student.ID}, next())

	course, err := s.courses.CreateCourse(s.ctx, "Computability", []uint{student.ID})
	s.Require().NoError(err)
	created := next()
	s.Equal(events.CourseCreated, created.Type)
	s.Equal(course.ID, created.CourseID)
	s.Equal([]uint{student.ID}, created.Students)

	empty := []uint{}
	_, err = s.courses.UpdateCourse(s.ctx, course.ID, CourseUpdate{StudentIDs: &empty})
	s.Require().NoError(err)
	updated := next()
	s.Equal(events.CourseUpdated, updated.Type)
	s.Empty(updated.Students)

	s.Require().NoError(s.courses.DeleteCourse(s.ctx, course.ID))
	s.Equal(events.Event{Type: events.CourseDeleted, CourseID: course.ID}, next())

	s.Require().NoError(s.students.DeleteStudent(s.ctx, student.ID))
	s.Equal(events.Event{Type: events.StudentDeleted, StudentID: student.ID}, next())

	// failures publish nothing
	s.Error(s.courses.DeleteCourse(s.ctx, course.ID))
	select {
	case e := <-received:
		s.Failf("unexpected event", "%v", e)
	case <-time.After(100 * time.Millisecond):
	}
}
