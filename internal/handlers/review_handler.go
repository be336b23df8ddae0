package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/middleware"
	"github.com/Jason26214/MoviesApi/internal/models"
)

func (h *Handler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListForMovie(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusOK, reviews)
}

func (h *Handler) CreateReview(c *fiber.Ctx) error {
	var req models.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	review, err := h.reviews.Create(c.Context(), middleware.ActorFromCtx(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusCreated, review)
}

func (h *Handler) UpdateReview(c *fiber.Ctx) error {
	var req models.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	review, err := h.reviews.Update(c.Context(), middleware.ActorFromCtx(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusOK, review)
}

func (h *Handler) DeleteReview(c *fiber.Ctx) error {
	if err := h.reviews.Delete(c.Context(), middleware.ActorFromCtx(c), c.Params("id")); err != nil {
		return err
	}
	return respondNoContent(c)
}
