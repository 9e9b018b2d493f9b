package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/redact"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService provides user-related operations
type UserService interface {
	// ListUsers returns every registered user
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Register stores user unless one with the same email exists, in which
	// case it returns ErrUserExists.
	Register(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_service"),
		now:       time.Now,
	}
}

// ListUsers returns every registered user
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Register looks the email up first and inserts only when it is free. The
// unique index catches the race between two concurrent registrations, and
// that path reports ErrUserExists as well.
func (s *UserServiceImpl) Register(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	existing, err := s.userStore.GetByEmail(ctx, user.Email)
	switch {
	case err == nil && existing != nil:
		s.logger.Debug("registration for existing email", "email", redact.String(user.Email))
		return primitive.NilObjectID, ErrUserExists
	case err != nil && !errors.Is(err, store.ErrUserNotFound):
		s.logger.Error("failed to look up user by email", "error", redact.Error(err), "email", redact.String(user.Email))
		return primitive.NilObjectID, fmt.Errorf("failed to retrieve user by email: %w", err)
	}

	user.PrepareForInsert(s.now())
	id, err := s.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("concurrent registration for email", "email", redact.String(user.Email))
			return primitive.NilObjectID, ErrUserExists
		}
		s.logger.Error("failed to save user to database", "error", redact.Error(err), "email", redact.String(user.Email))
		return primitive.NilObjectID, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Debug("user registered", "user_id", id.Hex(), "email", redact.String(user.Email))
	return id, nil
}
