package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/middleware"
	"github.com/Jason26214/MoviesApi/internal/models"
)

func (h *Handler) ListMovies(c *fiber.Ctx) error {
	movies, err := h.movies.List(c.Context())
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusOK, movies)
}

func (h *Handler) GetMovie(c *fiber.Ctx) error {
	movie, err := h.movies.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusOK, movie)
}

func (h *Handler) CreateMovie(c *fiber.Ctx) error {
	var req models.CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	movie, err := h.movies.Create(c.Context(), middleware.ActorFromCtx(c), req)
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusCreated, movie)
}

func (h *Handler) UpdateMovie(c *fiber.Ctx) error {
	var req models.UpdateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	movie, err := h.movies.Update(c.Context(), middleware.ActorFromCtx(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusOK, movie)
}

func (h *Handler) DeleteMovie(c *fiber.Ctx) error {
	if err := h.movies.Delete(c.Context(), middleware.ActorFromCtx(c), c.Params("id")); err != nil {
		return err
	}
	return respondNoContent(c)
}

func (h *Handler) UploadPoster(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("poster")
	if err != nil {
		return apperr.New(apperr.Validation, "poster file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperr.Wrap(err, apperr.Internal, "failed to open poster upload")
	}
	defer file.Close()

	movie, err := h.movies.AttachPoster(
		c.Context(),
		middleware.ActorFromCtx(c),
		c.Params("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusOK, movie)
}
