package models

import "time"

// Course is a named course with enrolled students
type Course struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"not null;index"`
	Students  []Student `json:"-" gorm:"many2many:course_students;"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentIDs returns the ids of the loaded students in enrollment order
func (c Course) StudentIDs() []uint {
	ids := make([]uint, 0, len(c.Students))
	for _, s := range c.Students {
		ids = append(ids, s.ID)
	}
	return ids
}
