package handlers

import (
	"fmt"
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/courses/internal/db/models"
)

// ListParams defines the filters and pagination accepted by list endpoints
type ListParams struct {
	ID     *uint   `query:"id"`
	Name   *string `query:"name"`
	Limit  int     `query:"limit"`
	Offset int     `query:"offset"`
}

// Validate validates the list parameters
func (p ListParams) Validate() error {
	if p.ID != nil && *p.ID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNegativeID))
	}
	if p.Limit < 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNegativeLimit))
	}
	if p.Offset < 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNegativeOffset))
	}
	return nil
}

// ListOptions converts the parameters to repository options
func (p ListParams) ListOptions() *models.ListOptions {
	return &models.ListOptions{
		ID:     p.ID,
		Name:   p.Name,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
}

// parseListParams reads and validates list query parameters
func parseListParams(c *fiber.Ctx) (*ListParams, error) {
	var params ListParams
	if err := c.QueryParser(&params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &params, nil
}

// parseID reads the positive integer id route parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fmt.Errorf("%s: %q", strings.ToLower(ErrMsgInvalidID), c.Params("id"))
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s", strings.ToLower(ErrMsgNegativeID))
	}
	return uint(id), nil
}
