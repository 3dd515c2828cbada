package repos

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/test/fixtures"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	courseRepo  *CourseRepository
	studentRepo *StudentRepository
}

func (s *DBRepositoryTestSuite) SetupTest() {
	// Every test gets its own named in-memory database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Student{}, &models.Course{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.courseRepo = NewCourseRepository(s.db)
	s.studentRepo = NewStudentRepository(s.db)
	s.ctx = context.Background()
}

func (s *DBRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) createTestStudents(n int) []models.Student {
	batch := make([]*models.Student, n)
	for i := range batch {
		batch[i] = fixtures.NewStudent()
	}
	s.Require().NoError(s.studentRepo.CreateBatch(s.ctx, batch))

	students := make([]models.Student, n)
	for i, student := range batch {
		s.Require().NotZero(student.ID)
		students[i] = *student
	}
	return students
}

func (s *DBRepositoryTestSuite) createTestCourse(students ...models.Student) *models.Course {
	course := fixtures.NewCourse(students...)
	s.Require().NoError(s.courseRepo.Create(s.ctx, course))
	s.Require().NotZero(course.ID)
	return course
}

func (s *DBRepositoryTestSuite) enrollmentCount() int64 {
	var count int64
	s.Require().NoError(s.db.Table(courseStudentsTable).Count(&count).Error)
	return count
}

// TestDBRepository runs the base suite to verify setup and teardown
func TestDBRepository(t *testing.T) {
	suite.Run(t, new(DBRepositoryTestSuite))
}
