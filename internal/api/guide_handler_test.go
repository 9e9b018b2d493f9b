package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/mocks"
)

func TestGuideHandler(t *testing.T) {
	guides := mocks.NewMockGuideStore()
	handler := NewGuideHandler(guides, testLogger())

	rr := serve("/guides", http.MethodPost, handler.Create,
		newJSONRequest(t, http.MethodPost, "/guides", map[string]any{
			"name":   "Rafi",
			"email":  "rafi@example.com",
			"skills": []string{"trekking", "first aid"},
		}))
	require.Equal(t, http.StatusOK, rr.Code)
	id := decodeBody[InsertResponse](t, rr).InsertedID

	rr = serve("/guides/{id}", http.MethodGet, handler.Get,
		httptest.NewRequest(http.MethodGet, "/guides/"+id.Hex(), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[domain.Guide](t, rr)
	assert.Equal(t, "Rafi", got.Name)
	assert.Equal(t, []string{"trekking", "first aid"}, got.Skills)

	rr = serve("/guides/{id}", http.MethodGet, handler.Get,
		httptest.NewRequest(http.MethodGet, "/guides/"+primitive.NewObjectID().Hex(), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "null", rr.Body.String())

	rr = serve("/guides", http.MethodGet, handler.List, httptest.NewRequest(http.MethodGet, "/guides", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]domain.Guide](t, rr), 1)

	rr = serve("/guides", http.MethodPost, handler.Create,
		newJSONRequest(t, http.MethodPost, "/guides", map[string]any{"name": "No Email"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
