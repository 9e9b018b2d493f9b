package mongodb

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WishlistStore implements store.WishlistStore on the wishlist collection.
type WishlistStore struct {
	coll *mongo.Collection
}

// NewWishlistStore creates a WishlistStore backed by db.
func NewWishlistStore(db *mongo.Database) *WishlistStore {
	return &WishlistStore{coll: db.Collection(WishlistCollection)}
}

var _ store.WishlistStore = (*WishlistStore)(nil)

// ListByEmail implements store.WishlistStore.ListByEmail
func (s *WishlistStore) ListByEmail(ctx context.Context, email string) ([]domain.WishlistItem, error) {
	return findAll[domain.WishlistItem](ctx, s.coll, "wishlist", bson.M{"email": email})
}

// Create implements store.WishlistStore.Create
func (s *WishlistStore) Create(ctx context.Context, item *domain.WishlistItem) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, "wishlist", item)
}

// DeleteForOwner implements store.WishlistStore.DeleteForOwner.
// The owner email is part of the filter so one user can never remove
// another user's item by guessing its id.
func (s *WishlistStore) DeleteForOwner(
	ctx context.Context,
	id primitive.ObjectID,
	email string,
) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return 0, wrapError("wishlist", "delete", err)
	}
	return res.DeletedCount, nil
}
