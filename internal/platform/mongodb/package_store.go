package mongodb

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PackageStore implements store.PackageStore on the packages collection.
type PackageStore struct {
	coll *mongo.Collection
}

// NewPackageStore creates a PackageStore backed by db.
func NewPackageStore(db *mongo.Database) *PackageStore {
	return &PackageStore{coll: db.Collection(PackagesCollection)}
}

// Ensure PackageStore implements store.PackageStore interface
var _ store.PackageStore = (*PackageStore)(nil)

// List implements store.PackageStore.List
func (s *PackageStore) List(ctx context.Context) ([]domain.Package, error) {
	return findAll[domain.Package](ctx, s.coll, "package", bson.M{})
}

// ListByTourType implements store.PackageStore.ListByTourType
func (s *PackageStore) ListByTourType(ctx context.Context, tourType string) ([]domain.Package, error) {
	return findAll[domain.Package](ctx, s.coll, "package", bson.M{"tourType": tourType})
}

// GetByID implements store.PackageStore.GetByID
func (s *PackageStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	return findOne[domain.Package](ctx, s.coll, "package", bson.M{"_id": id}, store.ErrPackageNotFound)
}

// Create implements store.PackageStore.Create
func (s *PackageStore) Create(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, "package", pkg)
}
