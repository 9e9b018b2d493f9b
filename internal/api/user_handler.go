package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/service"
)

// UserExistsMessage is reported when a registration targets a known email.
const UserExistsMessage = "user already exists"

// UserHandler handles user listing and registration.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger.With("handler", "user"),
	}
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Register handles POST /users. A known email is not an error: the
// response says the user exists and carries a null identifier.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if !decodeAndValidate(w, r, &user) {
		return
	}

	id, err := h.users.Register(r.Context(), &user)
	if errors.Is(err, service.ErrUserExists) {
		shared.RespondWithJSON(w, r, http.StatusOK, UserExistsResponse{Message: UserExistsMessage})
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newInsertResponse(id))
}
