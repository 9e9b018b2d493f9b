package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourDay is one day of a package itinerary.
type TourDay struct {
	Day         int    `bson:"day"         json:"day"         validate:"gte=0"`
	Title       string `bson:"title"       json:"title"       validate:"required"`
	Description string `bson:"description" json:"description"`
}

// Package is a tour offered on the site.
type Package struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"      json:"_id"`
	TourType  string             `bson:"tourType"           json:"tourType"           validate:"required"`
	TripTitle string             `bson:"tripTitle"          json:"tripTitle"          validate:"required"`
	Price     float64            `bson:"price"              json:"price"              validate:"gte=0"`
	About     string             `bson:"about,omitempty"    json:"about,omitempty"`
	Images    []string           `bson:"images,omitempty"   json:"images,omitempty"   validate:"omitempty,dive,required"`
	TourPlan  []TourDay          `bson:"tourPlan,omitempty" json:"tourPlan,omitempty" validate:"omitempty,dive"`
	CreatedAt time.Time          `bson:"createdAt"          json:"createdAt"`
}

// PrepareForInsert clears any client-supplied identifier and stamps the creation time.
func (p *Package) PrepareForInsert(now time.Time) {
	p.ID = primitive.NilObjectID
	p.CreatedAt = now.UTC()
}
