package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseStudentIDs(t *testing.T) {
	course := Course{
		Name:     "Go",
		Students: []Student{{ID: 3}, {ID: 1}, {ID: 2}},
	}
	assert.Equal(t, []uint{3, 1, 2}, course.StudentIDs())
	assert.Empty(t, Course{}.StudentIDs())
	assert.NotNil(t, Course{}.StudentIDs())
}

func TestListOptionsFilters(t *testing.T) {
	base := ListOptions{Limit: 10, Offset: 5}

	byID := base.WithID(7)
	assert.Equal(t, uint(7), *byID.ID)
	assert.Nil(t, byID.Name)
	assert.Equal(t, 10, byID.Limit)

	byName := base.WithName("Physics")
	assert.Equal(t, "Physics", *byName.Name)
	assert.Nil(t, byName.ID)

	// the receiver stays untouched
	assert.Nil(t, base.ID)
	assert.Nil(t, base.Name)
}
