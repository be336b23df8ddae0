package storage

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/models"
)

// MemoryMovieStore is the in-memory MovieStore used by tests. The single
// mutex serializes every read-modify-write, which satisfies the same
// per-document ordering guarantee the Mongo store provides with CAS.
type MemoryMovieStore struct {
	mu     sync.RWMutex
	movies map[string]models.Movie
}

func NewMemoryMovieStore() *MemoryMovieStore {
	return &MemoryMovieStore{movies: make(map[string]models.Movie)}
}

func cloneMovie(m models.Movie) models.Movie {
	out := m
	out.Types = make([]string, len(m.Types))
	copy(out.Types, m.Types)
	out.Reviews = make([]models.Review, len(m.Reviews))
	copy(out.Reviews, m.Reviews)
	return out
}

func (s *MemoryMovieStore) List(ctx context.Context) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	movies := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		movies = append(movies, cloneMovie(m))
	}
	return movies, nil
}

func (s *MemoryMovieStore) GetByID(ctx context.Context, id string) (models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	movie, ok := s.movies[id]
	if !ok {
		return models.Movie{}, apperr.New(apperr.NotFound, "movie not found")
	}
	return cloneMovie(movie), nil
}

func (s *MemoryMovieStore) Insert(ctx context.Context, movie *models.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if movie.ID.IsZero() {
		movie.ID = primitive.NewObjectID()
	}
	s.movies[movie.ID.Hex()] = cloneMovie(*movie)
	return nil
}

func (s *MemoryMovieStore) Mutate(ctx context.Context, id string, fn func(*models.Movie) error) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	movie, ok := s.movies[id]
	if !ok {
		return models.Movie{}, apperr.New(apperr.NotFound, "movie not found")
	}
	working := cloneMovie(movie)
	if err := fn(&working); err != nil {
		return models.Movie{}, err
	}
	working.Version++
	working.UpdatedAt = time.Now().UTC()
	s.movies[id] = cloneMovie(working)
	return working, nil
}

func (s *MemoryMovieStore) MutateByReviewID(ctx context.Context, reviewID string, fn func(*models.Movie) error) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, movie := range s.movies {
		for _, review := range movie.Reviews {
			if review.ID.Hex() != reviewID {
				continue
			}
			working := cloneMovie(movie)
			if err := fn(&working); err != nil {
				return models.Movie{}, err
			}
			working.Version++
			working.UpdatedAt = time.Now().UTC()
			s.movies[id] = cloneMovie(working)
			return working, nil
		}
	}
	return models.Movie{}, apperr.New(apperr.NotFound, "review not found")
}

func (s *MemoryMovieStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movies[id]; !ok {
		return apperr.New(apperr.NotFound, "movie not found")
	}
	delete(s.movies, id)
	return nil
}

// MemoryUserStore is the in-memory UserStore used by tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by username
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Insert(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Username]; exists {
		return apperr.New(apperr.Conflict, "username already taken")
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.Username] = *user
	return nil
}

func (s *MemoryUserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return models.User{}, apperr.New(apperr.NotFound, "user not found")
	}
	return user, nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID.Hex() == id {
			return user, nil
		}
	}
	return models.User{}, apperr.New(apperr.NotFound, "user not found")
}

func (s *MemoryUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}
