package serverutils

import (
	"errors"

	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const CodeHTTP = "HTTP_ERROR"

type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func ErrorResponse(code, message string) ErrorBody {
	return ErrorBody{Error: message, Code: code}
}

// NewErrorHandler is installed as fiber.Config.ErrorHandler. Every error a
// handler returns passes through here exactly once.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		body := ErrorResponse(apperror.CodeInternal, "Internal server error")

		var fiberErr *fiber.Error
		if appErr, ok := apperror.As(err); ok {
			status = appErr.Status()
			body = ErrorResponse(appErr.Code, appErr.Message)
		} else if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusRequestEntityTooLarge {
			tooLarge := apperror.UploadRejected("File too large. Request body exceeds the server limit.")
			status = tooLarge.Status()
			body = ErrorResponse(tooLarge.Code, tooLarge.Message)
		} else if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			body = ErrorResponse(CodeHTTP, fiberErr.Message)
		}

		details := map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"status": status,
			"error":  err,
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", details)
		} else {
			log.Warn("http", "request rejected", details)
		}

		return ctx.Status(status).JSON(body)
	}
}
