package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
	BookingStatusCanceled BookingStatus = "canceled"
)

// Tourist identifies who made a booking.
type Tourist struct {
	Name  string `bson:"name,omitempty"  json:"name,omitempty"`
	Email string `bson:"email"           json:"email"           validate:"required,email"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// GuideList holds the guide identities assigned to a booking. Clients send
// either a single string or an array; both decode to a list.
type GuideList []string

// UnmarshalJSON accepts a JSON string, an array of strings, or null.
func (g *GuideList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*g = GuideList{}
		} else {
			*g = GuideList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("guides must be a string or an array of strings: %w", ErrInvalidFormat)
	}
	if many == nil {
		many = []string{}
	}
	*g = GuideList(many)
	return nil
}

// UnmarshalBSONValue reads documents written with either a single guide
// string or a guide array.
func (g *GuideList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		*g = GuideList{rv.StringValue()}
	case bson.TypeNull, bson.TypeUndefined:
		*g = GuideList{}
	case bson.TypeArray:
		var many []string
		if err := rv.Unmarshal(&many); err != nil {
			return fmt.Errorf("decode guides: %w", err)
		}
		*g = GuideList(many)
	default:
		return fmt.Errorf("guides stored as %s: %w", t, ErrInvalidFormat)
	}
	return nil
}

// Booking is a tourist's reservation of a package.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"         json:"_id"`
	PackageID   string             `bson:"packageId,omitempty"   json:"packageId,omitempty"   validate:"omitempty,mongodb"`
	PackageName string             `bson:"packageName,omitempty" json:"packageName,omitempty"`
	Tourist     Tourist            `bson:"tourist"               json:"tourist"               validate:"required"`
	Guides      GuideList          `bson:"guides"                json:"guides"`
	TourDate    string             `bson:"tourDate,omitempty"    json:"tourDate,omitempty"`
	Price       float64            `bson:"price"                 json:"price"                 validate:"gte=0"`
	Status      BookingStatus      `bson:"status"                json:"status"                validate:"omitempty,oneof=pending accepted rejected canceled"`
	CreatedAt   time.Time          `bson:"createdAt"             json:"createdAt"`
}

// PrepareForInsert clears any client-supplied identifier, defaults the
// status to pending, and stamps the creation time.
func (b *Booking) PrepareForInsert(now time.Time) {
	b.ID = primitive.NilObjectID
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	if b.Guides == nil {
		b.Guides = GuideList{}
	}
	b.CreatedAt = now.UTC()
}

// BookingStatusUpdate is the partial update applied to a booking.
type BookingStatusUpdate struct {
	Status BookingStatus `json:"status" validate:"required,oneof=pending accepted rejected canceled"`
}
