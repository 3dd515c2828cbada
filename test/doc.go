// Package test provides infrastructure and utilities for integration testing the courses API.
//
// A Suite wires a complete environment: a file backed SQLite database, the
// real Fiber app served by an httptest.Server, and a typed API client pointed
// at it. Factories persist random courses and students so tests can start
// from a populated database.
//
// Example Usage:
//
//	func TestExample(t *testing.T) {
//	    suite := test.NewSuite(t)
//	    defer suite.Cleanup()
//
//	    courses := suite.CourseFactory(10, test.WithStudents(3))
//	    got, err := suite.APIClient.GetCourse(suite.Context(), courses[0].ID)
//	    suite.Require().NoError(err)
//	}
package test
