package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/models"
)

func (h *Handler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	user, token, err := h.auth.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{"token": token, "user": user})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	user, token, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return respondData(c, fiber.StatusOK, fiber.Map{"token": token, "role": user.Role})
}
