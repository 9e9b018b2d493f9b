package mongodb

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GuideStore implements store.GuideStore on the guides collection.
type GuideStore struct {
	coll *mongo.Collection
}

// NewGuideStore creates a GuideStore backed by db.
func NewGuideStore(db *mongo.Database) *GuideStore {
	return &GuideStore{coll: db.Collection(GuidesCollection)}
}

var _ store.GuideStore = (*GuideStore)(nil)

func (s *GuideStore) List(ctx context.Context) ([]domain.Guide, error) {
	return findAll[domain.Guide](ctx, s.coll, "guide", bson.M{})
}

func (s *GuideStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Guide, error) {
	return findOne[domain.Guide](ctx, s.coll, "guide", bson.M{"_id": id}, store.ErrGuideNotFound)
}

func (s *GuideStore) Create(ctx context.Context, guide *domain.Guide) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, "guide", guide)
}
