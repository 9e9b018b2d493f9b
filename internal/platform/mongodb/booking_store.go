package mongodb

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingStore implements store.BookingStore on the booking collection.
type BookingStore struct {
	coll *mongo.Collection
}

// NewBookingStore creates a BookingStore backed by db.
func NewBookingStore(db *mongo.Database) *BookingStore {
	return &BookingStore{coll: db.Collection(BookingsCollection)}
}

var _ store.BookingStore = (*BookingStore)(nil)

// bookingListFilter builds the query for a listing. The guides field may hold
// a single email or an array of emails; an equality match covers both.
func bookingListFilter(f store.BookingFilter) bson.M {
	filter := bson.M{"status": bson.M{"$ne": domain.BookingStatusCanceled}}
	if f.View == store.BookingViewGuide {
		filter["guides"] = f.Email
	} else {
		filter["tourist.email"] = f.Email
	}
	return filter
}

// List implements store.BookingStore.List
func (s *BookingStore) List(ctx context.Context, f store.BookingFilter) ([]domain.Booking, error) {
	opts := options.Find()
	if f.Skip > 0 {
		opts.SetSkip(f.Skip)
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return findAll[domain.Booking](ctx, s.coll, "booking", bookingListFilter(f), opts)
}

// EstimatedCount implements store.BookingStore.EstimatedCount
func (s *BookingStore) EstimatedCount(ctx context.Context) (int64, error) {
	n, err := s.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, wrapError("booking", "count", err)
	}
	return n, nil
}

// CountByTourist implements store.BookingStore.CountByTourist
func (s *BookingStore) CountByTourist(ctx context.Context, email string) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"tourist.email": email})
	if err != nil {
		return 0, wrapError("booking", "count", err)
	}
	return n, nil
}

// Create implements store.BookingStore.Create
func (s *BookingStore) Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, "booking", booking)
}

// Delete implements store.BookingStore.Delete
func (s *BookingStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, wrapError("booking", "delete", err)
	}
	return res.DeletedCount, nil
}

// UpdateStatus implements store.BookingStore.UpdateStatus
func (s *BookingStore) UpdateStatus(
	ctx context.Context,
	id primitive.ObjectID,
	status domain.BookingStatus,
) (store.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return store.UpdateResult{}, wrapError("booking", "update", err)
	}
	return store.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
