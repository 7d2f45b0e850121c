package handler

import (
	"errors"
	"strconv"

	"stocktrack/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// writeError maps the error taxonomy onto HTTP statuses.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case apperr.IsValidation(err):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperr.ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, apperr.Validation(name, "must be a positive integer")
	}
	return uint(id), nil
}
