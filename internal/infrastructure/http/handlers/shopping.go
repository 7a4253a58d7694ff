package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/application/user"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/pkg/errors"
)

// ShoppingHandler serves the shopping-list endpoint.
type ShoppingHandler struct {
	shoppingService inbound.ShoppingService
	userService     *user.UserService
	logger          *zap.Logger
}

// NewShoppingHandler creates the shopping handler.
func NewShoppingHandler(
	shoppingService inbound.ShoppingService,
	userService *user.UserService,
	logger *zap.Logger,
) *ShoppingHandler {
	return &ShoppingHandler{
		shoppingService: shoppingService,
		userService:     userService,
		logger:          logger.Named("shopping-handler"),
	}
}

// Get handles GET /api/v1/shopping-list. The optional ?system= query
// parameter overrides the caller's stored unit preference for this response
// only.
func (h *ShoppingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	system, err := h.resolveSystem(r, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.shoppingService.BuildShoppingList(r.Context(), userID, system)
	if err != nil {
		logHandlerError(h.logger, "build shopping list", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *ShoppingHandler) resolveSystem(r *http.Request, userID uuid.UUID) (measurement.System, error) {
	switch r.URL.Query().Get("system") {
	case string(measurement.SystemMetric):
		return measurement.SystemMetric, nil
	case string(measurement.SystemUS):
		return measurement.SystemUS, nil
	case "":
	default:
		return "", errors.NewValidationError("system must be metric or us")
	}

	profile, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		return "", err
	}
	if profile.UnitSystem == string(measurement.SystemMetric) {
		return measurement.SystemMetric, nil
	}
	return measurement.SystemUS, nil
}
