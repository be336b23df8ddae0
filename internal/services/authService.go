package services

import (
	"context"
	"time"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/auth"
	"github.com/Jason26214/MoviesApi/internal/models"
	"github.com/Jason26214/MoviesApi/internal/storage"
)

// AuthService owns registration and login. Passwords are hashed exactly once,
// here, before the user ever reaches the store; username uniqueness is the
// store's job and surfaces as a Conflict error.
type AuthService struct {
	users  storage.UserStore
	tokens *auth.TokenManager
}

func NewAuthService(users storage.UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user with the default role and returns it together with
// a fresh token.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.User, string, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", apperr.Wrap(err, apperr.Internal, "failed to hash password")
	}

	now := time.Now().UTC()
	user := models.User{
		Username:  username,
		Password:  hashed,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Insert(ctx, &user); err != nil {
		return models.User{}, "", err
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", apperr.Wrap(err, apperr.Internal, "failed to issue token")
	}
	return user, token, nil
}

// Login authenticates a credential pair and returns a token. Lookup failures
// and password mismatches are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return models.User{}, "", apperr.New(apperr.Unauthenticated, "invalid credentials")
		}
		return models.User{}, "", err
	}

	if !auth.VerifyPassword(password, user.Password) {
		return models.User{}, "", apperr.New(apperr.Unauthenticated, "invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", apperr.Wrap(err, apperr.Internal, "failed to issue token")
	}
	return user, token, nil
}

// ListUsers returns every account, admin only. Password hashes are stripped
// before the result leaves the service.
func (s *AuthService) ListUsers(ctx context.Context, actor *auth.Actor) ([]models.User, error) {
	if err := auth.Authorize(actor, auth.ActionListUsers, ""); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}
