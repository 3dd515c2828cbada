// Package models defines the persisted entities of the courses service
package models

// ListOptions represents pagination and filtering options for list operations.
// A zero Limit means no limit.
type ListOptions struct {
	Limit  int     `json:"limit"`          // Number of items to return
	Offset int     `json:"offset"`         // Number of items to skip
	ID     *uint   `json:"id,omitempty"`   // Exact id filter
	Name   *string `json:"name,omitempty"` // Exact name filter
}

// WithID returns a copy of the options filtered to a single id
func (o ListOptions) WithID(id uint) *ListOptions {
	o.ID = &id
	return &o
}

// WithName returns a copy of the options filtered to an exact name
func (o ListOptions) WithName(name string) *ListOptions {
	o.Name = &name
	return &o
}
