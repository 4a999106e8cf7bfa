package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse builds the standard error body. The "error" key is part of
// the public API contract.
func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"code":  code,
		"error": message,
	}
}

// ErrorHandlerMiddleware converts panics into a 500 JSON response so a single
// bad request cannot take the process down.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
			}
		}()
		return ctx.Next()
	}
}
