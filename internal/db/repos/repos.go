// Package repos implements GORM-backed persistence for courses and students
package repos

import (
	"gorm.io/gorm"

	"github.com/celestiaorg/courses/internal/db/models"
)

const courseStudentsTable = "course_students"

// applyListOptions adds filters, ordering and pagination to a query.
// Rows come back ordered by id so listings are stable between calls.
func applyListOptions(db *gorm.DB, opts *models.ListOptions) *gorm.DB {
	db = db.Order("id ASC")
	if opts == nil {
		return db
	}
	if opts.ID != nil {
		db = db.Where("id = ?", *opts.ID)
	}
	if opts.Name != nil {
		db = db.Where("name = ?", *opts.Name)
	}
	if opts.Limit > 0 {
		db = db.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		db = db.Offset(opts.Offset)
	}
	return db
}
