package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered visitor. Email is the natural key.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"   json:"_id"`
	Name      string             `bson:"name,omitempty"  json:"name,omitempty"`
	Email     string             `bson:"email"           json:"email"           validate:"required,email"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      Role               `bson:"role,omitempty"  json:"role,omitempty"  validate:"omitempty,oneof=tourist guide admin"`
	CreatedAt time.Time          `bson:"createdAt"       json:"createdAt"`
}

// PrepareForInsert clears any client-supplied identifier and stamps the creation time.
func (u *User) PrepareForInsert(now time.Time) {
	u.ID = primitive.NilObjectID
	u.CreatedAt = now.UTC()
}
