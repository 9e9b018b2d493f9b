package api

import (
	"log/slog"
	"net/http"

	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/platform/logger"
	"github.com/blissful-trails/trails-api/internal/service"
)

// BookingHandler handles booking requests.
type BookingHandler struct {
	bookings service.BookingService
	logger   *slog.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookings service.BookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		logger:   logger.With("handler", "booking"),
	}
}

// List handles GET /bookings?email=&status=&page=&size=
//
// Any non-empty status selects the guide's view of bookings assigned to
// email; without it the tourist's own bookings are listed. Canceled
// bookings are never returned.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	var q BookingListQuery
	if err := decodeQuery(r, &q); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	bookings, err := h.bookings.List(r.Context(), service.BookingQuery{
		Email:  q.Email,
		Status: q.Status,
		Page:   q.Page,
		Size:   q.Size,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list bookings")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, bookings)
}

// Count handles GET /bookings-count. Without an email it answers the
// approximate total; with ?email= the exact count of that tourist's bookings.
func (h *BookingHandler) Count(w http.ResponseWriter, r *http.Request) {
	var q EmailQuery
	if err := decodeQuery(r, &q); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	n, err := h.bookings.Count(r.Context(), q.Email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to count bookings")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: n})
}

// Create handles POST /bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var booking domain.Booking
	if !decodeAndValidate(w, r, &booking) {
		return
	}

	id, err := h.bookings.Create(r.Context(), &booking)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create booking")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newInsertResponse(id))
}

// Delete handles DELETE /bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	n, err := h.bookings.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete booking")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Acknowledged: true, DeletedCount: n})
}

// UpdateStatus handles PATCH /bookings/{id}
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var update domain.BookingStatusUpdate
	if !decodeAndValidate(w, r, &update) {
		return
	}

	res, err := h.bookings.UpdateStatus(r.Context(), id, update.Status)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update booking")
		return
	}

	log.Debug("booking status patched",
		slog.String("booking_id", id.Hex()),
		slog.String("status", string(update.Status)))
	shared.RespondWithJSON(w, r, http.StatusOK, newUpdateResponse(res))
}
