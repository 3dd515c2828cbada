package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/pkg/api/v1/handlers"
	"github.com/celestiaorg/courses/test"
)

func TestStudentLifecycle(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	created, err := suite.APIClient.CreateStudent(suite.Context(), handlers.StudentCreateParams{
		Name:      "Ada Lovelace",
		BirthDate: "1999-12-10",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "1999-12-10", created.BirthDate)

	got, err := suite.APIClient.GetStudent(suite.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	byName, err := suite.APIClient.GetStudents(suite.Context(), models.ListOptions{}.WithName("Ada Lovelace"))
	require.NoError(t, err)
	require.Len(t, byName, 1)

	require.NoError(t, suite.APIClient.DeleteStudent(suite.Context(), created.ID))
	_, err = suite.APIClient.GetStudent(suite.Context(), created.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestListStudents(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	suite.StudentFactory(7)

	students, err := suite.APIClient.GetStudents(suite.Context(), nil)
	require.NoError(t, err)
	assert.Len(t, students, 7)
}

func TestDeleteEnrolledStudent(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	course := suite.CourseFactory(1, test.WithStudents(2))[0]
	leaving := course.Students[0]

	require.NoError(t, suite.APIClient.DeleteStudent(suite.Context(), leaving.ID))

	got, err := suite.APIClient.GetCourse(suite.Context(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{course.Students[1].ID}, got.Students)
}

func TestCreateStudentValidation(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	_, err := suite.APIClient.CreateStudent(suite.Context(), handlers.StudentCreateParams{})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = suite.APIClient.CreateStudent(suite.Context(), handlers.StudentCreateParams{Name: "x", BirthDate: "yesterday"})
	requireStatus(t, err, http.StatusBadRequest)
}
