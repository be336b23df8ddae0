package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/auth"
	"github.com/Jason26214/MoviesApi/internal/models"
	"github.com/Jason26214/MoviesApi/internal/rating"
	"github.com/Jason26214/MoviesApi/internal/storage"
)

// ReviewService mutates the review list embedded in a movie. Every mutation
// runs inside the store's serialized read-modify-write and recomputes the
// parent's average before the document is persisted, so the review list and
// the average can never disagree.
type ReviewService struct {
	movies storage.MovieStore
}

func NewReviewService(movies storage.MovieStore) *ReviewService {
	return &ReviewService{movies: movies}
}

func (s *ReviewService) ListForMovie(ctx context.Context, movieID string) ([]models.Review, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return movie.Reviews, nil
}

func (s *ReviewService) Create(ctx context.Context, actor *auth.Actor, movieID string, req models.CreateReviewRequest) (models.Review, error) {
	if err := auth.Authorize(actor, auth.ActionCreateReview, ""); err != nil {
		return models.Review{}, err
	}

	authorID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return models.Review{}, apperr.New(apperr.Unauthenticated, "invalid token subject")
	}

	now := time.Now().UTC()
	review := models.Review{
		ID:        primitive.NewObjectID(),
		Content:   req.Content,
		Rating:    req.Rating,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.movies.Mutate(ctx, movieID, func(m *models.Movie) error {
		m.Reviews = append(m.Reviews, review)
		m.AverageRating = rating.Average(m.Reviews)
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// Update edits a review located by its own id. The ownership check happens
// inside the mutate callback, where the stored author is known; a DENY there
// aborts the write entirely.
func (s *ReviewService) Update(ctx context.Context, actor *auth.Actor, reviewID string, req models.UpdateReviewRequest) (models.Review, error) {
	var updated models.Review
	_, err := s.movies.MutateByReviewID(ctx, reviewID, func(m *models.Movie) error {
		i := findReview(m.Reviews, reviewID)
		if i < 0 {
			return apperr.New(apperr.NotFound, "review not found")
		}
		if err := auth.Authorize(actor, auth.ActionUpdateReview, m.Reviews[i].AuthorID.Hex()); err != nil {
			return err
		}
		if req.Content != nil {
			m.Reviews[i].Content = *req.Content
		}
		if req.Rating != nil {
			m.Reviews[i].Rating = *req.Rating
		}
		m.Reviews[i].UpdatedAt = time.Now().UTC()
		m.AverageRating = rating.Average(m.Reviews)
		updated = m.Reviews[i]
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}
	return updated, nil
}

func (s *ReviewService) Delete(ctx context.Context, actor *auth.Actor, reviewID string) error {
	_, err := s.movies.MutateByReviewID(ctx, reviewID, func(m *models.Movie) error {
		i := findReview(m.Reviews, reviewID)
		if i < 0 {
			return apperr.New(apperr.NotFound, "review not found")
		}
		if err := auth.Authorize(actor, auth.ActionDeleteReview, m.Reviews[i].AuthorID.Hex()); err != nil {
			return err
		}
		m.Reviews = append(m.Reviews[:i], m.Reviews[i+1:]...)
		m.AverageRating = rating.Average(m.Reviews)
		return nil
	})
	return err
}

func findReview(reviews []models.Review, id string) int {
	for i, r := range reviews {
		if r.ID.Hex() == id {
			return i
		}
	}
	return -1
}
