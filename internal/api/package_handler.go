package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/platform/logger"
	"github.com/blissful-trails/trails-api/internal/store"
)

// PackageHandler handles tour package requests.
type PackageHandler struct {
	packages store.PackageStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packages store.PackageStore, logger *slog.Logger) *PackageHandler {
	return &PackageHandler{
		packages: packages,
		logger:   logger.With("handler", "package"),
		now:      time.Now,
	}
}

// List handles GET /packages
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.packages.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list packages")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pkgs)
}

// ListByTourType handles GET /packages/tour-type/{tourType}
func (h *PackageHandler) ListByTourType(w http.ResponseWriter, r *http.Request) {
	tourType := chi.URLParam(r, "tourType")
	pkgs, err := h.packages.ListByTourType(r.Context(), tourType)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list packages")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pkgs)
}

// Get handles GET /packages/{id}. A missing package yields a null body.
func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	pkg, err := h.packages.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		shared.RespondWithJSON(w, r, http.StatusOK, nil)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get package")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pkg)
}

// Create handles POST /packages
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var pkg domain.Package
	if !decodeAndValidate(w, r, &pkg) {
		return
	}

	pkg.PrepareForInsert(h.now())
	id, err := h.packages.Create(r.Context(), &pkg)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create package")
		return
	}

	log.Info("package created", slog.String("package_id", id.Hex()), slog.String("tour_type", pkg.TourType))
	shared.RespondWithJSON(w, r, http.StatusOK, newInsertResponse(id))
}
