package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blissful-trails/trails-api/internal/api/middleware"
	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/service/auth"
)

// queryDecoder is safe for concurrent use; it caches struct metadata.
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// getPathObjectID extracts a document identifier from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed identifier if valid
//   - (primitive.NilObjectID, error): A validation error if the parameter is missing or malformed
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return primitive.NilObjectID, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := primitive.ObjectIDFromHex(pathParam)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// decodeQuery fills v from the request's query string.
func decodeQuery(r *http.Request, v interface{}) error {
	if err := queryDecoder.Decode(v, r.URL.Query()); err != nil {
		return domain.NewValidationError("query", "is malformed", domain.ErrInvalidFormat)
	}
	return nil
}

// decodeAndValidate decodes the JSON body into v and validates it. It writes
// the error response and returns false when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}

// authorizeOwner checks the verified identity on the request against owner.
// It writes a 403 response and returns false when they differ.
func authorizeOwner(w http.ResponseWriter, r *http.Request, owner string) bool {
	claims, _ := middleware.GetClaims(r)
	if err := auth.AuthorizeOwner(claims, owner); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
