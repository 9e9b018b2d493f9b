package store

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List returns every registered user.
	List(ctx context.Context) ([]domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create saves a new user and returns its id.
	// Returns ErrEmailExists when the unique email index rejects the insert.
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
}
