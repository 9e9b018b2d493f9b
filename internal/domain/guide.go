package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guide is a tour guide profile.
type Guide struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"            json:"_id"`
	Name           string             `bson:"name"                     json:"name"                     validate:"required"`
	Email          string             `bson:"email"                    json:"email"                    validate:"required,email"`
	Photo          string             `bson:"photo,omitempty"          json:"photo,omitempty"`
	Phone          string             `bson:"phone,omitempty"          json:"phone,omitempty"`
	Education      string             `bson:"education,omitempty"      json:"education,omitempty"`
	Skills         []string           `bson:"skills,omitempty"         json:"skills,omitempty"`
	WorkExperience string             `bson:"workExperience,omitempty" json:"workExperience,omitempty"`
}
