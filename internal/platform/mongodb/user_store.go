package mongodb

import (
	"context"
	"errors"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore implements the store.UserStore interface
// using the users collection as the storage backend.
type UserStore struct {
	coll *mongo.Collection
}

// NewUserStore creates a UserStore backed by db. EnsureIndexes must have run
// for Create to detect duplicate emails under concurrent registration.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(UsersCollection)}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	return findAll[domain.User](ctx, s.coll, "user", bson.M{})
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return findOne[domain.User](ctx, s.coll, "user", bson.M{"email": email}, store.ErrUserNotFound)
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	id, err := insertOne(ctx, s.coll, "user", user)
	if errors.Is(err, store.ErrDuplicate) {
		return primitive.NilObjectID, store.ErrEmailExists
	}
	return id, err
}
