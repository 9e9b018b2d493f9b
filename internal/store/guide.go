package store

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuideStore defines persistence for tour guide profiles.
type GuideStore interface {
	List(ctx context.Context) ([]domain.Guide, error)
	// GetByID returns ErrGuideNotFound when no guide has the id.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Guide, error)
	Create(ctx context.Context, guide *domain.Guide) (primitive.ObjectID, error)
}
