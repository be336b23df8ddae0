package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jason26214/MoviesApi/internal/middleware"
)

// ListUsers returns every registered account, without password hashes.
// Admin only; the service enforces the role check.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusOK, users)
}
