package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/platewise/v2/internal/application/user"
)

// AuthHandler serves registration, login and profile endpoints.
type AuthHandler struct {
	userService *user.UserService
	logger      *zap.Logger
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(userService *user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger.Named("auth-handler"),
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var cmd user.RegisterCommand
	if err := decodeAndValidate(r, &cmd); err != nil {
		respondError(w, r, err)
		return
	}

	response, err := h.userService.Register(r.Context(), cmd)
	if err != nil {
		logHandlerError(h.logger, "register", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, response)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd user.LoginCommand
	if err := decodeAndValidate(r, &cmd); err != nil {
		respondError(w, r, err)
		return
	}

	response, err := h.userService.Login(r.Context(), cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, response)
}

// Me handles GET /api/v1/users/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	profile, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

type setUnitSystemRequest struct {
	UnitSystem string `json:"unitSystem" validate:"required"`
}

// SetUnitSystem handles PUT /api/v1/users/me/units.
func (h *AuthHandler) SetUnitSystem(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req setUnitSystemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	profile, err := h.userService.SetUnitSystem(r.Context(), userID, req.UnitSystem)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
