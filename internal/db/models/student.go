package models

import "time"

// Student is a person who can be enrolled in courses
type Student struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Name      string     `json:"name" gorm:"not null;index"`
	BirthDate *time.Time `json:"birth_date,omitempty" gorm:"type:date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
