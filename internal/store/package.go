package store

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackageStore defines persistence for tour packages.
type PackageStore interface {
	// List returns every package in store order.
	List(ctx context.Context) ([]domain.Package, error)

	// ListByTourType returns the packages whose tourType equals tourType.
	ListByTourType(ctx context.Context, tourType string) ([]domain.Package, error)

	// GetByID returns ErrPackageNotFound when no package has the id.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error)

	// Create inserts the package and returns the generated id.
	Create(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error)
}
