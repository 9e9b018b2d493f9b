package api

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blissful-trails/trails-api/internal/store"
)

// Common request/response structures

// InsertResponse acknowledges a created document.
type InsertResponse struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// UserExistsResponse reports a registration for an email that already has a
// user. InsertedID is always null.
type UserExistsResponse struct {
	Message    string  `json:"message"`
	InsertedID *string `json:"insertedId"`
}

// DeleteResponse acknowledges a delete. DeletedCount is zero when nothing
// matched.
type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResponse acknowledges a partial update. Updates never upsert, so
// UpsertedCount is zero and UpsertedID null.
type UpdateResponse struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// TokenResponse defines the successful response of the token endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// CountResponse carries a booking count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// AdminStatusResponse answers whether an email holds the admin role.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// GuideStatusResponse answers whether an email holds the guide role.
type GuideStatusResponse struct {
	Guide bool `json:"guide"`
}

// PaymentIntentRequest defines the payload for creating a payment intent.
// Price is in major currency units.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse returns the client secret used by the browser to
// confirm the payment.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// EmailQuery is the ?email= query string shared by owner-scoped routes.
type EmailQuery struct {
	Email string `schema:"email"`
}

// BookingListQuery defines the query string of the booking listing.
type BookingListQuery struct {
	Email  string `schema:"email"`
	Status string `schema:"status"`
	Page   int64  `schema:"page"`
	Size   int64  `schema:"size"`
}

func newInsertResponse(id primitive.ObjectID) InsertResponse {
	return InsertResponse{Acknowledged: true, InsertedID: id}
}

func newUpdateResponse(res store.UpdateResult) UpdateResponse {
	return UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
