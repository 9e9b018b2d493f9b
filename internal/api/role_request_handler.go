package api

import (
	"log/slog"
	"net/http"

	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/platform/logger"
	"github.com/blissful-trails/trails-api/internal/service"
)

// RoleRequestHandler handles requests for the guide and admin roles and
// the checks the front end runs against them.
type RoleRequestHandler struct {
	requests service.RoleRequestService
	logger   *slog.Logger
}

// NewRoleRequestHandler creates a new RoleRequestHandler
func NewRoleRequestHandler(requests service.RoleRequestService, logger *slog.Logger) *RoleRequestHandler {
	return &RoleRequestHandler{
		requests: requests,
		logger:   logger.With("handler", "role_request"),
	}
}

// ListByEmail handles GET /request-to-admin?email=
func (h *RoleRequestHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	var q EmailQuery
	if err := decodeQuery(r, &q); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	reqs, err := h.requests.ListByEmail(r.Context(), q.Email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list role requests")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reqs)
}

// Submit handles POST /request-to-admin. Callers file requests only for
// their own email.
func (h *RoleRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.RoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if !authorizeOwner(w, r, req.Email) {
		return
	}

	id, err := h.requests.Submit(r.Context(), &req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to submit role request")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newInsertResponse(id))
}

// ListPending handles GET /pending-requests
func (h *RoleRequestHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.requests.ListPending(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list pending requests")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reqs)
}

// Decide handles PATCH /pending-requests?email=
func (h *RoleRequestHandler) Decide(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var q EmailQuery
	if err := decodeQuery(r, &q); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if q.Email == "" {
		HandleAPIError(w, r, domain.NewValidationError("email", "is required", domain.ErrValidation), "")
		return
	}

	var decision domain.RoleDecision
	if !decodeAndValidate(w, r, &decision) {
		return
	}

	res, err := h.requests.Decide(r.Context(), q.Email, decision)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update role request")
		return
	}

	log.Info("role request decided",
		slog.String("status", string(decision.Status)),
		slog.String("role", string(decision.Role)),
		slog.Int64("matched", res.MatchedCount))
	shared.RespondWithJSON(w, r, http.StatusOK, newUpdateResponse(res))
}

// IsAdmin handles GET /request-to-admin/admin?email=
func (h *RoleRequestHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	ok, handled := h.hasRole(w, r, domain.RoleAdmin)
	if handled {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, AdminStatusResponse{Admin: ok})
}

// IsGuide handles GET /request-to-admin/guide?email=
func (h *RoleRequestHandler) IsGuide(w http.ResponseWriter, r *http.Request) {
	ok, handled := h.hasRole(w, r, domain.RoleGuide)
	if handled {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, GuideStatusResponse{Guide: ok})
}

// hasRole runs the owner check and role lookup shared by the role checks.
// handled is true when an error response has already been written.
func (h *RoleRequestHandler) hasRole(w http.ResponseWriter, r *http.Request, role domain.Role) (ok, handled bool) {
	var q EmailQuery
	if err := decodeQuery(r, &q); err != nil {
		HandleAPIError(w, r, err, "")
		return false, true
	}
	if !authorizeOwner(w, r, q.Email) {
		return false, true
	}

	ok, err := h.requests.HasRole(r.Context(), q.Email, role)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check role")
		return false, true
	}
	return ok, false
}
