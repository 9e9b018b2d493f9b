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

func TestStoryHandler(t *testing.T) {
	existing := domain.Story{ID: primitive.NewObjectID(), Title: "Tea gardens", Content: "Sreemangal at dawn"}
	stories := mocks.NewMockStoryStore(existing)
	handler := NewStoryHandler(stories, testLogger())

	t.Run("create stamps creation time", func(t *testing.T) {
		rr := serve("/stories", http.MethodPost, handler.Create,
			newJSONRequest(t, http.MethodPost, "/stories", map[string]any{
				"title":   "Saint Martin",
				"content": "Coral island",
				"author":  map[string]any{"name": "Mim", "email": "mim@example.com"},
			}))

		require.Equal(t, http.StatusOK, rr.Code)
		all := stories.All()
		require.Len(t, all, 2)
		assert.False(t, all[1].CreatedAt.IsZero())
	})

	t.Run("create requires content", func(t *testing.T) {
		rr := serve("/stories", http.MethodPost, handler.Create,
			newJSONRequest(t, http.MethodPost, "/stories", map[string]any{"title": "Empty"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid Content: required field", decodeErrorResponse(t, rr).Message)
	})

	t.Run("get by id", func(t *testing.T) {
		rr := serve("/stories/{id}", http.MethodGet, handler.Get,
			httptest.NewRequest(http.MethodGet, "/stories/"+existing.ID.Hex(), nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Tea gardens", decodeBody[domain.Story](t, rr).Title)
	})

	t.Run("list", func(t *testing.T) {
		rr := serve("/stories", http.MethodGet, handler.List, httptest.NewRequest(http.MethodGet, "/stories", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]domain.Story](t, rr), 2)
	})
}
