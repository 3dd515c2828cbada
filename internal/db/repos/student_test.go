package repos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/celestiaorg/courses/internal/db/models"
)

type StudentRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func TestStudentRepository(t *testing.T) {
	suite.Run(t, new(StudentRepositoryTestSuite))
}

func (s *StudentRepositoryTestSuite) TestCreateAndGet() {
	student := &models.Student{Name: "Ada Lovelace"}
	s.Require().NoError(s.studentRepo.Create(s.ctx, student))
	s.NotZero(student.ID)

	found, err := s.studentRepo.Get(s.ctx, student.ID)
	s.Require().NoError(err)
	s.Equal("Ada Lovelace", found.Name)
	s.Nil(found.BirthDate)

	_, err = s.studentRepo.Get(s.ctx, 999)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
	s.Contains(err.Error(), "student not found")
}

func (s *StudentRepositoryTestSuite) TestBirthDateRoundTrip() {
	students := s.createTestStudents(1)

	found, err := s.studentRepo.Get(s.ctx, students[0].ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.BirthDate)
	s.Equal(students[0].BirthDate.Format("2006-01-02"), found.BirthDate.Format("2006-01-02"))
}

func (s *StudentRepositoryTestSuite) TestGetByIDs() {
	students := s.createTestStudents(5)

	found, err := s.studentRepo.GetByIDs(s.ctx, []uint{students[3].ID, students[1].ID, 999})
	s.Require().NoError(err)
	s.Require().Len(found, 2)
	s.Equal(students[1].ID, found[0].ID)
	s.Equal(students[3].ID, found[1].ID)

	empty, err := s.studentRepo.GetByIDs(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *StudentRepositoryTestSuite) TestListFilters() {
	students := s.createTestStudents(4)

	all, err := s.studentRepo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all, 4)

	byName, err := s.studentRepo.List(s.ctx, models.ListOptions{}.WithName(students[2].Name))
	s.Require().NoError(err)
	s.Require().NotEmpty(byName)
	s.Equal(students[2].Name, byName[0].Name)

	byID, err := s.studentRepo.List(s.ctx, models.ListOptions{}.WithID(students[0].ID))
	s.Require().NoError(err)
	s.Require().Len(byID, 1)
	s.Equal(students[0].ID, byID[0].ID)
}

func (s *StudentRepositoryTestSuite) TestDeleteWithdrawsFromCourses() {
	students := s.createTestStudents(2)
	course := s.createTestCourse(students...)

	s.Require().NoError(s.studentRepo.Delete(s.ctx, students[0].ID))

	found, err := s.courseRepo.Get(s.ctx, course.ID)
	s.Require().NoError(err)
	s.Equal([]uint{students[1].ID}, found.StudentIDs())
	s.Equal(int64(1), s.enrollmentCount())

	err = s.studentRepo.Delete(s.ctx, students[0].ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}
