package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/celestiaorg/courses/internal/db/models"
)

// CourseRepository handles database operations for course entities
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course and its enrollments.
// Students must already exist, they are linked but never inserted.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Omit("Students.*").Create(course).Error
}

// CreateBatch inserts several courses in a single transaction
func (r *CourseRepository) CreateBatch(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Students.*").Create(courses).Error
}

// Get retrieves a course with its students.
// Returns ErrRecordNotFound if the course doesn't exist
func (r *CourseRepository) Get(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Preload("Students", func(db *gorm.DB) *gorm.DB { return db.Order("students.id ASC") }).
		First(&course, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("course not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

// List retrieves courses matching the options, ordered by id
func (r *CourseRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Course, error) {
	courses := []models.Course{}
	db := r.db.WithContext(ctx).
		Preload("Students", func(db *gorm.DB) *gorm.DB { return db.Order("students.id ASC") })

	if err := applyListOptions(db, opts).Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error
	return count, err
}

// Update saves the course name and, when replaceStudents is set, replaces its enrollments
func (r *CourseRepository) Update(ctx context.Context, course *models.Course, replaceStudents bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Course{}).Where("id = ?", course.ID).Update("name", course.Name)
		if result.Error != nil {
			return fmt.Errorf("failed to update course: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("course not found: %w", gorm.ErrRecordNotFound)
		}
		if !replaceStudents {
			return nil
		}

		students := tx.Model(course).Association("Students")
		if len(course.Students) == 0 {
			return students.Clear()
		}
		return students.Replace(course.Students)
	})
}

// Delete removes a course and its enrollments.
// Returns ErrRecordNotFound if the course doesn't exist
func (r *CourseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+courseStudentsTable+" WHERE course_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to remove enrollments: %w", err)
		}
		result := tx.Delete(&models.Course{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete course: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("course not found: %w", gorm.ErrRecordNotFound)
		}
		return nil
	})
}
