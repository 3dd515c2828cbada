package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/celestiaorg/courses/internal/db/models"
)

// StudentRepository handles database operations for student entities
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// CreateBatch inserts several students at once
func (r *StudentRepository) CreateBatch(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(students).Error
}

// Get retrieves a student by id.
// Returns ErrRecordNotFound if the student doesn't exist
func (r *StudentRepository) Get(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).First(&student, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("student not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

// GetByIDs retrieves the students with the given ids, ordered by id.
// Missing ids are silently skipped, callers compare lengths.
func (r *StudentRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Student, error) {
	students := []models.Student{}
	if len(ids) == 0 {
		return students, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	return students, nil
}

// List retrieves students matching the options, ordered by id
func (r *StudentRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Student, error) {
	students := []models.Student{}
	if err := applyListOptions(r.db.WithContext(ctx), opts).Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// Delete removes a student and withdraws it from every course.
// Returns ErrRecordNotFound if the student doesn't exist
func (r *StudentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+courseStudentsTable+" WHERE student_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to remove enrollments: %w", err)
		}
		result := tx.Delete(&models.Student{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete student: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("student not found: %w", gorm.ErrRecordNotFound)
		}
		return nil
	})
}
