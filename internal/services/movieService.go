package services

import (
	"context"
	"io"
	"time"

	"github.com/Jason26214/MoviesApi/internal/auth"
	"github.com/Jason26214/MoviesApi/internal/models"
	"github.com/Jason26214/MoviesApi/internal/storage"
)

// MovieService owns movie CRUD. Every mutation is authorized against an
// explicit actor before anything touches the store; reads are open to anyone.
type MovieService struct {
	movies  storage.MovieStore
	posters storage.PosterStore
}

func NewMovieService(movies storage.MovieStore, posters storage.PosterStore) *MovieService {
	return &MovieService{movies: movies, posters: posters}
}

func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	return s.movies.List(ctx)
}

func (s *MovieService) Get(ctx context.Context, id string) (models.Movie, error) {
	return s.movies.GetByID(ctx, id)
}

// Create persists a new movie with an empty review list and a zero average.
func (s *MovieService) Create(ctx context.Context, actor *auth.Actor, req models.CreateMovieRequest) (models.Movie, error) {
	if err := auth.Authorize(actor, auth.ActionCreateMovie, ""); err != nil {
		return models.Movie{}, err
	}

	now := time.Now().UTC()
	movie := models.Movie{
		Title:         req.Title,
		Description:   req.Description,
		Types:         req.Types,
		AverageRating: 0,
		Reviews:       []models.Review{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.movies.Insert(ctx, &movie); err != nil {
		return models.Movie{}, err
	}
	return movie, nil
}

// Update applies the fields present in req and leaves the rest alone. The
// average rating is never touched here; only review mutations move it.
func (s *MovieService) Update(ctx context.Context, actor *auth.Actor, id string, req models.UpdateMovieRequest) (models.Movie, error) {
	if err := auth.Authorize(actor, auth.ActionUpdateMovie, ""); err != nil {
		return models.Movie{}, err
	}

	return s.movies.Mutate(ctx, id, func(m *models.Movie) error {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.Types != nil {
			m.Types = req.Types
		}
		return nil
	})
}

func (s *MovieService) Delete(ctx context.Context, actor *auth.Actor, id string) error {
	if err := auth.Authorize(actor, auth.ActionDeleteMovie, ""); err != nil {
		return err
	}
	return s.movies.Delete(ctx, id)
}

// AttachPoster stores the image in the poster bucket and records its URL on
// the movie.
func (s *MovieService) AttachPoster(ctx context.Context, actor *auth.Actor, id, filename, contentType string, r io.Reader, size int64) (models.Movie, error) {
	if err := auth.Authorize(actor, auth.ActionUpdateMovie, ""); err != nil {
		return models.Movie{}, err
	}

	// Confirm the movie exists before uploading so a bad id doesn't leave an
	// orphaned object behind.
	if _, err := s.movies.GetByID(ctx, id); err != nil {
		return models.Movie{}, err
	}

	url, err := s.posters.Put(ctx, id, filename, contentType, r, size)
	if err != nil {
		return models.Movie{}, err
	}

	return s.movies.Mutate(ctx, id, func(m *models.Movie) error {
		m.PosterURL = url
		return nil
	})
}
