package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseID("not-an-object-id")
	assert.ErrorIs(t, err, ErrInvalidID)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "id", vErr.Field)
	assert.Equal(t, "id has invalid format", vErr.Error())
}

func TestGuideListJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    GuideList
		wantErr bool
	}{
		{"single string", `{"guides":"guide@example.com"}`, GuideList{"guide@example.com"}, false},
		{"array", `{"guides":["a@example.com","b@example.com"]}`, GuideList{"a@example.com", "b@example.com"}, false},
		{"empty string", `{"guides":""}`, GuideList{}, false},
		{"null", `{"guides":null}`, GuideList{}, false},
		{"number", `{"guides":5}`, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b Booking
			err := json.Unmarshal([]byte(tc.payload), &b)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.Guides)
		})
	}
}

func TestGuideListBSON(t *testing.T) {
	single, err := bson.Marshal(bson.M{"guides": "guide@example.com", "status": "pending"})
	require.NoError(t, err)
	var fromString Booking
	require.NoError(t, bson.Unmarshal(single, &fromString))
	assert.Equal(t, GuideList{"guide@example.com"}, fromString.Guides)

	list, err := bson.Marshal(bson.M{"guides": bson.A{"a@example.com", "b@example.com"}})
	require.NoError(t, err)
	var fromArray Booking
	require.NoError(t, bson.Unmarshal(list, &fromArray))
	assert.Equal(t, GuideList{"a@example.com", "b@example.com"}, fromArray.Guides)
}

func TestPrepareForInsert(t *testing.T) {
	now := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)

	b := Booking{ID: primitive.NewObjectID(), Tourist: Tourist{Email: "t@example.com"}}
	b.PrepareForInsert(now)
	assert.True(t, b.ID.IsZero())
	assert.Equal(t, BookingStatusPending, b.Status)
	assert.Equal(t, GuideList{}, b.Guides)
	assert.Equal(t, now, b.CreatedAt)

	r := RoleRequest{
		Email:         "g@example.com",
		Status:        RequestStatusApproved,
		Role:          RoleAdmin,
		RequestedRole: RoleGuide,
	}
	r.PrepareForInsert(now)
	assert.Equal(t, RequestStatusPending, r.Status, "a new request is always pending")
	assert.Empty(t, r.Role, "a new request grants no role")
	assert.Equal(t, RoleGuide, r.RequestedRole)

	r2 := RoleRequest{Email: "g@example.com"}
	r2.PrepareForInsert(now)
	assert.Equal(t, RequestStatusPending, r2.Status)
}

func TestEntityValidation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		entity  any
		wantErr bool
	}{
		{"valid package", &Package{TourType: "hiking", TripTitle: "Sajek", Price: 120}, false},
		{"package without tour type", &Package{TripTitle: "Sajek"}, true},
		{"package with negative price", &Package{TourType: "hiking", TripTitle: "Sajek", Price: -1}, true},
		{"valid user", &User{Email: "u@example.com"}, false},
		{"user with bad email", &User{Email: "nope"}, true},
		{"user with unknown role", &User{Email: "u@example.com", Role: "king"}, true},
		{"valid wishlist item", &WishlistItem{Email: "u@example.com", PackageID: primitive.NewObjectID().Hex()}, false},
		{"wishlist item with bad package id", &WishlistItem{Email: "u@example.com", PackageID: "xyz"}, true},
		{"valid guide", &Guide{Name: "Rafi", Email: "rafi@example.com"}, false},
		{"guide without name", &Guide{Email: "rafi@example.com"}, true},
		{"valid role request", &RoleRequest{Email: "g@example.com", Status: RequestStatusPending}, false},
		{"role request with bad status", &RoleRequest{Email: "g@example.com", Status: "maybe"}, true},
		{"valid booking", &Booking{Tourist: Tourist{Email: "t@example.com"}, Status: BookingStatusCanceled}, false},
		{"booking without tourist email", &Booking{}, true},
		{"booking with bad status", &Booking{Tourist: Tourist{Email: "t@example.com"}, Status: "lost"}, true},
		{"valid story", &Story{Title: "Cox's Bazar", Content: "Long beach"}, false},
		{"story without content", &Story{Title: "Cox's Bazar"}, true},
		{"story with bad author email", &Story{Title: "a", Content: "b", Author: StoryAuthor{Email: "x"}}, true},
		{"valid role decision", &RoleDecision{Status: RequestStatusApproved, Role: RoleGuide}, false},
		{"role decision without status", &RoleDecision{Role: RoleGuide}, true},
		{"booking status update", &BookingStatusUpdate{Status: BookingStatusCanceled}, false},
		{"empty booking status update", &BookingStatusUpdate{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.entity)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
