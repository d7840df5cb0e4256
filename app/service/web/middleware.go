package web

import (
	"errors"
	"log/slog"
	"time"

	"pmdsite/app/service/content"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		slog.Error("Request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
	}

	return c.Status(code).JSON(errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, content.ErrUnknownLanguage), errors.Is(err, content.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &validationErrs):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// requestLogger logs every request once the error handler has set the final status.
func requestLogger(c *fiber.Ctx) error {
	start := time.Now()

	if err := c.Next(); err != nil {
		if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	slog.Debug("Handled request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)

	return nil
}
