package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Jason26214/MoviesApi/internal/apperr"
)

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{"success": true, "data": data})
}

// respondNoContent writes a bare 204; no envelope, no body.
func respondNoContent(c *fiber.Ctx) error {
	c.Status(fiber.StatusNoContent)
	return nil
}

// NewErrorHandler builds the app-wide fiber error handler. Handlers return
// taxonomy errors and this is the single place that translates them to HTTP.
// Internal errors are logged in full and never reach the client.
func NewErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Router-level errors (unknown route, method not allowed, body limit).
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.Int("status", fiberErr.Code),
				slog.String("error", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(fiber.Map{"success": false, "error": fiberErr.Message})
		}

		kind := apperr.KindOf(err)
		message := apperr.MessageOf(err)

		if kind == apperr.Internal {
			logger.Error("unexpected error",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": message})
		}

		logger.Warn("request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("error", message))

		switch kind {
		case apperr.Validation:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": message})
		case apperr.NotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": message})
		case apperr.Conflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": message})
		case apperr.Forbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": message})
		case apperr.Unauthenticated:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": message})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "internal server error"})
		}
	}
}
