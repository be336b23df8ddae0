package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Jason26214/MoviesApi/internal/auth"
	"github.com/Jason26214/MoviesApi/internal/middleware"
	"github.com/Jason26214/MoviesApi/internal/services"
)

// Handler wires the HTTP surface to the services.
type Handler struct {
	auth     *services.AuthService
	movies   *services.MovieService
	reviews  *services.ReviewService
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func New(authSvc *services.AuthService, movieSvc *services.MovieService, reviewSvc *services.ReviewService, tokens *auth.TokenManager) *Handler {
	return &Handler{
		auth:     authSvc,
		movies:   movieSvc,
		reviews:  reviewSvc,
		tokens:   tokens,
		validate: NewValidator(),
	}
}

// RegisterRoutes mounts every route. Reads are public; every mutation goes
// through RequireAuth first, then the authorization engine inside the
// services decides admin/ownership.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)

	app.Get("/movies", h.ListMovies)
	app.Get("/movies/:id", h.GetMovie)
	app.Get("/movies/:id/reviews", h.ListReviews)

	protected := middleware.RequireAuth(h.tokens)
	app.Post("/movies", protected, h.CreateMovie)
	app.Patch("/movies/:id", protected, h.UpdateMovie)
	app.Delete("/movies/:id", protected, h.DeleteMovie)
	app.Post("/movies/:id/poster", protected, h.UploadPoster)
	app.Post("/movies/:id/reviews", protected, h.CreateReview)
	app.Patch("/reviews/:id", protected, h.UpdateReview)
	app.Delete("/reviews/:id", protected, h.DeleteReview)

	admin := app.Group("/admin", protected)
	admin.Get("/users", h.ListUsers)
}
