package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
)

// StoryHandler handles tourist story requests.
type StoryHandler struct {
	stories store.StoryStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(stories store.StoryStore, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{
		stories: stories,
		logger:  logger.With("handler", "story"),
		now:     time.Now,
	}
}

// List handles GET /stories
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list stories")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stories)
}

// Get handles GET /stories/{id}
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	story, err := h.stories.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		shared.RespondWithJSON(w, r, http.StatusOK, nil)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get story")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, story)
}

// Create handles POST /stories
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var story domain.Story
	if !decodeAndValidate(w, r, &story) {
		return
	}

	story.PrepareForInsert(h.now())
	id, err := h.stories.Create(r.Context(), &story)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create story")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newInsertResponse(id))
}
