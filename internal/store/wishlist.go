package store

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistStore defines persistence for wishlist items.
type WishlistStore interface {
	ListByEmail(ctx context.Context, email string) ([]domain.WishlistItem, error)
	Create(ctx context.Context, item *domain.WishlistItem) (primitive.ObjectID, error)

	// DeleteForOwner removes the item only if it belongs to email and
	// reports how many documents were deleted.
	DeleteForOwner(ctx context.Context, id primitive.ObjectID, email string) (int64, error)
}
