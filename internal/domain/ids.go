package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a hex string into a document identifier.
func ParseID(hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, NewValidationError("id", "is required", ErrValidation)
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, NewValidationError("id", "has invalid format", ErrInvalidID)
	}
	return id, nil
}
