package store

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoryStore defines persistence for tourist stories.
type StoryStore interface {
	List(ctx context.Context) ([]domain.Story, error)
	// GetByID returns ErrStoryNotFound when no story has the id.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Story, error)
	Create(ctx context.Context, story *domain.Story) (primitive.ObjectID, error)
}
