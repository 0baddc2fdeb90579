package serverutils

import (
	"errors"

	"riskiq-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates service errors into HTTP responses.
// AppError kinds carry their own status; anything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.As(err); ok {
			var details interface{}
			if len(appErr.Fields) > 0 {
				details = appErr.Fields
			}
			return ctx.Status(appErr.HTTPStatus()).
				JSON(ErrorResponse(appErr.Message, appErr.Retryable(), details))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse(fiberErr.Message, false, nil))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse("internal server error", false, nil))
	}
}
