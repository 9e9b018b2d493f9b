package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/platform/logger"
	"github.com/blissful-trails/trails-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	jwtService auth.JWTService
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		validator:  validator.New(),
		logger:     logger.With("handler", "auth"),
	}
}

// IssueToken handles POST /jwt. Every field of the JSON object becomes a
// claim of the signed token; the object must carry a valid email.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var payload map[string]any
	if err := shared.DecodeJSON(r, &payload); err != nil || payload == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	email, _ := payload["email"].(string)
	if err := h.validator.Var(email, "required,email"); err != nil {
		HandleAPIError(w, r, domain.NewValidationError("email", "must be a valid email address", domain.ErrValidation), "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), payload)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	log.Debug("token issued", slog.Int("claims", len(payload)))
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
