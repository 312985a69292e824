package handler

import (
	"errors"

	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userIDFromHeader reads the caller identity. Authentication itself sits in
// front of this service; here the id is trusted as-is.
func userIDFromHeader(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Get("X-User-ID"))
	if err != nil {
		return uuid.Nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "missing or invalid X-User-ID header",
		}, err)
	}
	return id, nil
}

// respondError maps the error taxonomy onto HTTP responses. Validation
// problems get a generic message with details for dev, data-access failures
// surface their message verbatim.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *util.ValidationError
	if errors.As(err, &validationErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: validationErr.Message,
		}, err)
	}

	var formatErr *util.UnsupportedFormatError
	if errors.As(err, &formatErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: formatErr.Error(),
		}, err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "record not found",
		}, err)
	}

	var dataErr *util.DataAccessError
	if errors.As(err, &dataErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: dataErr.Error(),
		}, err)
	}

	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: fallback,
	}, err)
}
