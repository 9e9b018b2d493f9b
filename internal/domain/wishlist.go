package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem is a package saved by a user for later.
type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"       json:"_id"`
	Email     string             `bson:"email"               json:"email"               validate:"required,email"`
	PackageID string             `bson:"packageId"           json:"packageId"           validate:"required,mongodb"`
	TripTitle string             `bson:"tripTitle,omitempty" json:"tripTitle,omitempty"`
	TourType  string             `bson:"tourType,omitempty"  json:"tourType,omitempty"`
	Price     float64            `bson:"price,omitempty"     json:"price,omitempty"     validate:"gte=0"`
}
