package api

import (
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blissful-trails/trails-api/internal/api/middleware"
	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/platform/logger"
	"github.com/blissful-trails/trails-api/internal/service/auth"
	"github.com/blissful-trails/trails-api/internal/store"
)

// WishlistHandler handles wishlist requests. Every route is owner-scoped.
type WishlistHandler struct {
	wishlist store.WishlistStore
	logger   *slog.Logger
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlist store.WishlistStore, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		logger:   logger.With("handler", "wishlist"),
	}
}

// List handles GET /wishlist?email=
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	var q EmailQuery
	if err := decodeQuery(r, &q); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !authorizeOwner(w, r, q.Email) {
		return
	}

	items, err := h.wishlist.ListByEmail(r.Context(), q.Email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list wishlist")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// Create handles POST /wishlist. The item's email must be the caller's.
func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item domain.WishlistItem
	if !decodeAndValidate(w, r, &item) {
		return
	}
	if !authorizeOwner(w, r, item.Email) {
		return
	}

	item.ID = primitive.NilObjectID
	id, err := h.wishlist.Create(r.Context(), &item)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add wishlist item")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newInsertResponse(id))
}

// Delete handles DELETE /wishlist/{id}. Only the caller's own items match,
// so deleting someone else's item reports a zero count.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	claims, _ := middleware.GetClaims(r)
	if claims == nil || claims.Email == "" {
		HandleAPIError(w, r, auth.ErrMissingIdentity, "")
		return
	}

	n, err := h.wishlist.DeleteForOwner(r.Context(), id, claims.Email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete wishlist item")
		return
	}

	log.Debug("wishlist item deleted", slog.String("item_id", id.Hex()), slog.Int64("deleted", n))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Acknowledged: true, DeletedCount: n})
}
