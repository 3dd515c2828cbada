package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/courses/internal/db/models"
)

func TestNewStudent(t *testing.T) {
	student := NewStudent()
	assert.Zero(t, student.ID)
	assert.NotEmpty(t, student.Name)
	require.NotNil(t, student.BirthDate)

	min, _ := time.Parse("2006-01-02", minBirthDate)
	max, _ := time.Parse("2006-01-02", maxBirthDate)
	assert.False(t, student.BirthDate.Before(min))
	assert.False(t, student.BirthDate.After(max))
}

func TestNewCourse(t *testing.T) {
	course := NewCourse()
	assert.Zero(t, course.ID)
	assert.NotEmpty(t, course.Name)
	assert.Empty(t, course.Students)

	students := []models.Student{{ID: 1}, {ID: 2}}
	assert.Equal(t, []uint{1, 2}, NewCourse(students...).StudentIDs())
}

func TestPickStudents(t *testing.T) {
	students := []models.Student{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	for i := 0; i < 50; i++ {
		picked := PickStudents(students, 3)
		require.NotEmpty(t, picked)
		assert.LessOrEqual(t, len(picked), 3)
		for j := 1; j < len(picked); j++ {
			assert.Equal(t, picked[j-1].ID+1, picked[j].ID, "picked students keep their order")
		}
	}

	assert.Nil(t, PickStudents(nil, 3))
	assert.Nil(t, PickStudents(students, 0))
	assert.LessOrEqual(t, len(PickStudents(students, 10)), len(students))
}
