package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingQuery is a booking listing request as clients send it.
// A non-empty Status selects the guide view; its value is not a status
// filter. Page is zero-based and a zero Size means no limit.
type BookingQuery struct {
	Email  string
	Status string
	Page   int64
	Size   int64
}

// Filter converts the query into a store filter.
func (q BookingQuery) Filter() (store.BookingFilter, error) {
	if q.Page < 0 || q.Size < 0 {
		return store.BookingFilter{}, ErrInvalidPagination
	}
	if q.Size > 0 && q.Page > math.MaxInt64/q.Size {
		return store.BookingFilter{}, ErrInvalidPagination
	}

	view := store.BookingViewTourist
	if q.Status != "" {
		view = store.BookingViewGuide
	}
	return store.BookingFilter{
		View:  view,
		Email: q.Email,
		Skip:  q.Page * q.Size,
		Limit: q.Size,
	}, nil
}

// BookingService provides booking queries and mutations.
type BookingService interface {
	List(ctx context.Context, q BookingQuery) ([]domain.Booking, error)

	// Count returns the approximate total when email is empty and the exact
	// number of bookings made by email otherwise.
	Count(ctx context.Context, email string) (int64, error)

	Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (store.UpdateResult, error)
}

type bookingService struct {
	bookings store.BookingStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewBookingService creates a BookingService.
func NewBookingService(bookings store.BookingStore, logger *slog.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		logger:   logger.With("component", "booking_service"),
		now:      time.Now,
	}
}

func (s *bookingService) List(ctx context.Context, q BookingQuery) ([]domain.Booking, error) {
	filter, err := q.Filter()
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	s.logger.Debug("listed bookings",
		"view", filter.View.String(),
		"skip", filter.Skip,
		"limit", filter.Limit,
		"returned", len(bookings))
	return bookings, nil
}

func (s *bookingService) Count(ctx context.Context, email string) (int64, error) {
	var (
		n   int64
		err error
	)
	if email == "" {
		n, err = s.bookings.EstimatedCount(ctx)
	} else {
		n, err = s.bookings.CountByTourist(ctx, email)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

func (s *bookingService) Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	booking.PrepareForInsert(s.now())
	id, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create booking: %w", err)
	}
	s.logger.Info("booking created", "booking_id", id.Hex(), "package_id", booking.PackageID)
	return id, nil
}

func (s *bookingService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	n, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete booking: %w", err)
	}
	s.logger.Info("booking deleted", "booking_id", id.Hex(), "deleted", n)
	return n, nil
}

func (s *bookingService) UpdateStatus(
	ctx context.Context,
	id primitive.ObjectID,
	status domain.BookingStatus,
) (store.UpdateResult, error) {
	res, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to update booking status: %w", err)
	}
	s.logger.Info("booking status updated",
		"booking_id", id.Hex(),
		"status", status,
		"matched", res.MatchedCount)
	return res, nil
}
