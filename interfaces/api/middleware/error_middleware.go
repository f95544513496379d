package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskapi/pkg/logger"
	"taskapi/pkg/utils"
)

// ErrorHandler is the fiber fallback for errors escaping a handler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusUnprocessableEntity:
				errCode = utils.ErrCodeValidation
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err, "path", c.Path())

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
