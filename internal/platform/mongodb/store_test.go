package mongodb

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockT(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: tourDB.users index: users_email_unique",
	})
}

func commandErrorResponse() bson.D {
	return mtest.CreateCommandErrorResponse(mtest.CommandError{
		Code:    2,
		Name:    "BadValue",
		Message: "bad value",
	})
}

func TestPackageStore(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("list decodes every document", func(mt *mtest.T) {
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.packages", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "tourType", Value: "hiking"}, {Key: "tripTitle", Value: "Ridge"}, {Key: "price", Value: 120.5}},
			bson.D{{Key: "_id", Value: id2}, {Key: "tourType", Value: "beach"}, {Key: "tripTitle", Value: "Coast"}, {Key: "price", Value: 80.0}},
		))

		pkgs, err := NewPackageStore(mt.DB).List(ctx)
		require.NoError(mt, err)
		require.Len(mt, pkgs, 2)
		assert.Equal(mt, id1, pkgs[0].ID)
		assert.Equal(mt, "Ridge", pkgs[0].TripTitle)
		assert.Equal(mt, 80.0, pkgs[1].Price)
	})

	mt.Run("empty listing is an empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.packages", mtest.FirstBatch))

		pkgs, err := NewPackageStore(mt.DB).ListByTourType(ctx, "desert")
		require.NoError(mt, err)
		assert.NotNil(mt, pkgs)
		assert.Empty(mt, pkgs)
	})

	mt.Run("get by id returns not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.packages", mtest.FirstBatch))

		pkg, err := NewPackageStore(mt.DB).GetByID(ctx, primitive.NewObjectID())
		assert.Nil(mt, pkg)
		assert.ErrorIs(mt, err, store.ErrPackageNotFound)
	})

	mt.Run("create returns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		pkg := &domain.Package{TourType: "hiking", TripTitle: "Ridge", Price: 10}
		id, err := NewPackageStore(mt.DB).Create(ctx, pkg)
		require.NoError(mt, err)
		assert.False(mt, id.IsZero())
	})

	mt.Run("driver failure is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(commandErrorResponse())

		_, err := NewPackageStore(mt.DB).List(ctx)
		require.Error(mt, err)
		var storeErr *store.StoreError
		require.True(mt, errors.As(err, &storeErr))
		assert.Equal(mt, "package", storeErr.Entity)
		assert.Equal(mt, "find", storeErr.Operation)
	})
}

func TestUserStore(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("get by email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.users", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "email", Value: "ana@example.com"},
				{Key: "role", Value: "guide"},
			},
		))

		user, err := NewUserStore(mt.DB).GetByEmail(ctx, "ana@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "ana@example.com", user.Email)
		assert.Equal(mt, domain.RoleGuide, user.Role)
	})

	mt.Run("get by email not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.users", mtest.FirstBatch))

		_, err := NewUserStore(mt.DB).GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(mt, err, store.ErrUserNotFound)
	})

	mt.Run("duplicate email maps to ErrEmailExists", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse())

		id, err := NewUserStore(mt.DB).Create(ctx, &domain.User{Email: "ana@example.com"})
		assert.True(mt, id.IsZero())
		assert.ErrorIs(mt, err, store.ErrEmailExists)
	})
}

func TestWishlistStoreDeleteForOwner(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("reports deleted count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		n, err := NewWishlistStore(mt.DB).DeleteForOwner(ctx, primitive.NewObjectID(), "ana@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), n)
	})

	mt.Run("foreign item deletes nothing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		n, err := NewWishlistStore(mt.DB).DeleteForOwner(ctx, primitive.NewObjectID(), "eve@example.com")
		require.NoError(mt, err)
		assert.Zero(mt, n)
	})
}

func TestRoleRequestStore(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("list pending", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.request", mtest.FirstBatch,
			bson.D{{Key: "email", Value: "g@example.com"}, {Key: "status", Value: "pending"}},
		))

		reqs, err := NewRoleRequestStore(mt.DB).ListPending(ctx)
		require.NoError(mt, err)
		require.Len(mt, reqs, 1)
		assert.Equal(mt, domain.RequestStatusPending, reqs[0].Status)
	})

	mt.Run("apply decision reports counts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(1)},
		))

		res, err := NewRoleRequestStore(mt.DB).ApplyDecision(ctx, "g@example.com", domain.RoleDecision{
			Status: domain.RequestStatusApproved,
			Role:   domain.RoleGuide,
		})
		require.NoError(mt, err)
		assert.Equal(mt, store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)
	})

	mt.Run("get by email not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.request", mtest.FirstBatch))

		_, err := NewRoleRequestStore(mt.DB).GetByEmail(ctx, "g@example.com")
		assert.ErrorIs(mt, err, store.ErrRoleRequestNotFound)
	})
}

func TestBookingStore(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("list decodes string and array guides", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.booking", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "tourist", Value: bson.D{{Key: "email", Value: "t@example.com"}}},
				{Key: "guides", Value: "g@example.com"},
				{Key: "status", Value: "pending"},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "tourist", Value: bson.D{{Key: "email", Value: "t@example.com"}}},
				{Key: "guides", Value: bson.A{"g@example.com", "h@example.com"}},
				{Key: "status", Value: "accepted"},
			},
		))

		bookings, err := NewBookingStore(mt.DB).List(ctx, store.BookingFilter{
			View:  store.BookingViewTourist,
			Email: "t@example.com",
			Skip:  0,
			Limit: 10,
		})
		require.NoError(mt, err)
		require.Len(mt, bookings, 2)
		assert.Equal(mt, domain.GuideList{"g@example.com"}, bookings[0].Guides)
		assert.Equal(mt, domain.GuideList{"g@example.com", "h@example.com"}, bookings[1].Guides)
	})

	mt.Run("estimated count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int64(42)}))

		n, err := NewBookingStore(mt.DB).EstimatedCount(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, int64(42), n)
	})

	mt.Run("count by tourist", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourDB.booking", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int64(3)}},
		))

		n, err := NewBookingStore(mt.DB).CountByTourist(ctx, "t@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})

	mt.Run("update status", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		res, err := NewBookingStore(mt.DB).UpdateStatus(ctx, primitive.NewObjectID(), domain.BookingStatusCanceled)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Zero(mt, res.ModifiedCount)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		n, err := NewBookingStore(mt.DB).Delete(ctx, primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), n)
	})
}

func TestBookingListFilter(t *testing.T) {
	notCanceled := bson.M{"$ne": domain.BookingStatusCanceled}

	tourist := bookingListFilter(store.BookingFilter{View: store.BookingViewTourist, Email: "t@example.com"})
	assert.Equal(t, bson.M{"tourist.email": "t@example.com", "status": notCanceled}, tourist)

	guide := bookingListFilter(store.BookingFilter{View: store.BookingViewGuide, Email: "g@example.com"})
	assert.Equal(t, bson.M{"guides": "g@example.com", "status": notCanceled}, guide)
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMockT(t)

	mt.Run("creates unique email index", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB, discardLogger()))
	})

	mt.Run("existing duplicate emails are logged, not fatal", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Name:    "DuplicateKey",
			Message: "E11000 duplicate key error collection: tourDB.users index: users_email_unique dup key: { email: \"ana@example.com\" }",
		}))

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB, logger))

		assert.Contains(mt, buf.String(), UsersEmailIndex)
		assert.Contains(mt, buf.String(), "starting without unique index")
		assert.NotContains(mt, buf.String(), "ana@example.com")
	})

	mt.Run("reports failure", func(mt *mtest.T) {
		mt.AddMockResponses(commandErrorResponse())
		require.Error(mt, EnsureIndexes(context.Background(), mt.DB, discardLogger()))
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no documents", err: mongo.ErrNoDocuments, want: store.ErrNotFound},
		{
			name: "duplicate key",
			err: mongo.WriteException{WriteErrors: mongo.WriteErrors{
				{Code: 11000, Message: "duplicate key"},
			}},
			want: store.ErrDuplicate,
		},
		{name: "deadline", err: context.DeadlineExceeded, want: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestConnectRejectsMalformedURI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Connect(ctx, "not-a-mongo-uri", time.Second, discardLogger())
	require.Error(t, err)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
