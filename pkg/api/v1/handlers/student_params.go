package handlers

import (
	"fmt"
	"strings"

	"github.com/celestiaorg/courses/internal/types"
)

// StudentCreateParams defines the body for creating a student
type StudentCreateParams struct {
	Name      string `json:"name" form:"name"`
	BirthDate string `json:"birth_date,omitempty" form:"birth_date"`
}

// Validate validates the parameters for creating a student
func (p StudentCreateParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgStudentNameRequired))
	}
	if _, err := types.ParseDate(p.BirthDate); err != nil {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgInvalidBirthDate))
	}
	return nil
}
