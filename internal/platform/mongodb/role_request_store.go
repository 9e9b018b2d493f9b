package mongodb

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoleRequestStore implements store.RoleRequestStore on the request collection.
type RoleRequestStore struct {
	coll *mongo.Collection
}

// NewRoleRequestStore creates a RoleRequestStore backed by db.
func NewRoleRequestStore(db *mongo.Database) *RoleRequestStore {
	return &RoleRequestStore{coll: db.Collection(RoleRequestsCollection)}
}

var _ store.RoleRequestStore = (*RoleRequestStore)(nil)

// ListByEmail implements store.RoleRequestStore.ListByEmail
func (s *RoleRequestStore) ListByEmail(ctx context.Context, email string) ([]domain.RoleRequest, error) {
	return findAll[domain.RoleRequest](ctx, s.coll, "role request", bson.M{"email": email})
}

// GetByEmail implements store.RoleRequestStore.GetByEmail
func (s *RoleRequestStore) GetByEmail(ctx context.Context, email string) (*domain.RoleRequest, error) {
	return findOne[domain.RoleRequest](
		ctx,
		s.coll,
		"role request",
		bson.M{"email": email},
		store.ErrRoleRequestNotFound,
	)
}

// ListPending implements store.RoleRequestStore.ListPending
func (s *RoleRequestStore) ListPending(ctx context.Context) ([]domain.RoleRequest, error) {
	return findAll[domain.RoleRequest](
		ctx,
		s.coll,
		"role request",
		bson.M{"status": domain.RequestStatusPending},
	)
}

// Create implements store.RoleRequestStore.Create
func (s *RoleRequestStore) Create(ctx context.Context, req *domain.RoleRequest) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, "role request", req)
}

// ApplyDecision implements store.RoleRequestStore.ApplyDecision.
// The role is only written when the decision carries one.
func (s *RoleRequestStore) ApplyDecision(
	ctx context.Context,
	email string,
	decision domain.RoleDecision,
) (store.UpdateResult, error) {
	set := bson.M{"status": decision.Status}
	if decision.Role != "" {
		set["role"] = decision.Role
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return store.UpdateResult{}, wrapError("role request", "update", err)
	}
	return store.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
