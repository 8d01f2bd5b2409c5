package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fintech-admin-be/internal/pkg/apperror"
)

// idParam parses the :id path parameter. A malformed id is a bad request,
// not a lookup of the zero id.
func idParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid id")
	}
	return id, nil
}
