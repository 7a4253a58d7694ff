package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/platewise/v2/internal/ports/inbound"
)

// FridgeHandler serves the fridge inventory endpoints.
type FridgeHandler struct {
	fridgeService inbound.FridgeService
	logger        *zap.Logger
}

// NewFridgeHandler creates the fridge handler.
func NewFridgeHandler(fridgeService inbound.FridgeService, logger *zap.Logger) *FridgeHandler {
	return &FridgeHandler{
		fridgeService: fridgeService,
		logger:        logger.Named("fridge-handler"),
	}
}

// List handles GET /api/v1/fridge.
func (h *FridgeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	entries, err := h.fridgeService.List(r.Context(), userID)
	if err != nil {
		logHandlerError(h.logger, "list fridge", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": entries})
}

type addFridgeItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Unit     string  `json:"unit"`
}

// Add handles POST /api/v1/fridge.
func (h *FridgeHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req addFridgeItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	entry, err := h.fridgeService.Add(r.Context(), inbound.AddFridgeItemCommand{
		UserID:   userID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// MarkPurchased handles POST /api/v1/fridge/purchased. Shopping-list items
// bought at the store land in the fridge through here.
func (h *FridgeHandler) MarkPurchased(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req addFridgeItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	entry, err := h.fridgeService.MarkPurchased(r.Context(), inbound.AddFridgeItemCommand{
		UserID:   userID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

type updateQuantityRequest struct {
	Quantity float64 `json:"quantity" validate:"gte=0"`
}

// UpdateQuantity handles PUT /api/v1/fridge/{id}.
func (h *FridgeHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	entryID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req updateQuantityRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	entry, err := h.fridgeService.UpdateQuantity(r.Context(), userID, entryID, req.Quantity)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// Remove handles DELETE /api/v1/fridge/{id}.
func (h *FridgeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	entryID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.fridgeService.Remove(r.Context(), userID, entryID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Clear handles DELETE /api/v1/fridge.
func (h *FridgeHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	if err := h.fridgeService.Clear(r.Context(), userID); err != nil {
		logHandlerError(h.logger, "clear fridge", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
