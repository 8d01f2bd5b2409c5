package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"fintech-admin-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware converts errors escaping a handler into the shared
// response envelope. Fiber errors keep their own status codes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		status := apperror.HTTPStatus(err)
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
