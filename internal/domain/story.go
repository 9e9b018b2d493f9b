package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoryAuthor identifies who wrote a story.
type StoryAuthor struct {
	Name  string `bson:"name,omitempty"  json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Story is a travel story shared by a tourist.
type Story struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"     json:"_id"`
	Title     string             `bson:"title"             json:"title"             validate:"required"`
	Content   string             `bson:"content"           json:"content"           validate:"required"`
	Author    StoryAuthor        `bson:"author"            json:"author"`
	Images    []string           `bson:"images,omitempty"  json:"images,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"         json:"createdAt"`
}

// PrepareForInsert clears any client-supplied identifier and stamps the creation time.
func (s *Story) PrepareForInsert(now time.Time) {
	s.ID = primitive.NilObjectID
	s.CreatedAt = now.UTC()
}
