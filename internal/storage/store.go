// Package storage holds the persistence adapters. The production
// implementations live on MongoDB (movies with embedded reviews, users with a
// unique username index) plus MinIO for poster objects; the memory
// implementations back the unit tests.
package storage

import (
	"context"

	"github.com/Jason26214/MoviesApi/internal/models"
)

// MovieStore is the persistence contract the movie and review services
// depend on. Mutate and MutateByReviewID run fn inside a read-modify-write
// that is serialized per movie document, so a review mutation and the
// average-rating recompute it triggers land atomically: no reader observes a
// review list and average that disagree, and two concurrent mutations of the
// same movie cannot overwrite each other.
type MovieStore interface {
	List(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id string) (models.Movie, error)
	Insert(ctx context.Context, movie *models.Movie) error
	Mutate(ctx context.Context, id string, fn func(*models.Movie) error) (models.Movie, error)
	MutateByReviewID(ctx context.Context, reviewID string, fn func(*models.Movie) error) (models.Movie, error)
	Delete(ctx context.Context, id string) error
}

// UserStore persists credentials. Insert must fail with a Conflict error
// when the username is already taken.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}
