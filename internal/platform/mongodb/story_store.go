package mongodb

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoryStore implements store.StoryStore on the stories collection.
type StoryStore struct {
	coll *mongo.Collection
}

// NewStoryStore creates a StoryStore backed by db.
func NewStoryStore(db *mongo.Database) *StoryStore {
	return &StoryStore{coll: db.Collection(StoriesCollection)}
}

var _ store.StoryStore = (*StoryStore)(nil)

func (s *StoryStore) List(ctx context.Context) ([]domain.Story, error) {
	return findAll[domain.Story](ctx, s.coll, "story", bson.M{})
}

func (s *StoryStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	return findOne[domain.Story](ctx, s.coll, "story", bson.M{"_id": id}, store.ErrStoryNotFound)
}

func (s *StoryStore) Create(ctx context.Context, story *domain.Story) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, "story", story)
}
