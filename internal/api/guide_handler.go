package api

import (
	"errors"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
)

// GuideHandler handles tour guide profile requests.
type GuideHandler struct {
	guides store.GuideStore
	logger *slog.Logger
}

// NewGuideHandler creates a new GuideHandler
func NewGuideHandler(guides store.GuideStore, logger *slog.Logger) *GuideHandler {
	return &GuideHandler{
		guides: guides,
		logger: logger.With("handler", "guide"),
	}
}

// List handles GET /guides
func (h *GuideHandler) List(w http.ResponseWriter, r *http.Request) {
	guides, err := h.guides.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list guides")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, guides)
}

// Get handles GET /guides/{id}
func (h *GuideHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	guide, err := h.guides.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		shared.RespondWithJSON(w, r, http.StatusOK, nil)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get guide")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, guide)
}

// Create handles POST /guides
func (h *GuideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var guide domain.Guide
	if !decodeAndValidate(w, r, &guide) {
		return
	}

	guide.ID = primitive.NilObjectID
	id, err := h.guides.Create(r.Context(), &guide)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create guide")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newInsertResponse(id))
}
