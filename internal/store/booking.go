package store

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStore defines persistence for bookings.
type BookingStore interface {
	// List returns the non-canceled bookings matching filter, in store order.
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)

	// EstimatedCount returns the collection's approximate document count.
	EstimatedCount(ctx context.Context) (int64, error)

	// CountByTourist returns the exact number of bookings made by email,
	// canceled ones included.
	CountByTourist(ctx context.Context, email string) (int64, error)

	Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error)

	// Delete removes the booking and reports how many documents were deleted.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)

	// UpdateStatus sets the booking's status field.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (UpdateResult, error)
}
