package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/ports/inbound"
)

// MealPlanHandler serves the weekly calendar endpoints.
type MealPlanHandler struct {
	mealPlanService inbound.MealPlanService
	logger          *zap.Logger
}

// NewMealPlanHandler creates the meal plan handler.
func NewMealPlanHandler(mealPlanService inbound.MealPlanService, logger *zap.Logger) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanService: mealPlanService,
		logger:          logger.Named("mealplan-handler"),
	}
}

type planMealRequest struct {
	RecipeID uuid.UUID `json:"recipeId" validate:"required"`
	Date     string    `json:"date" validate:"required"`
	Servings int       `json:"servings" validate:"gte=0"`
}

// Plan handles POST /api/v1/mealplan.
func (h *MealPlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req planMealRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	plannedID, err := h.mealPlanService.Plan(r.Context(), inbound.PlanMealCommand{
		UserID:   userID,
		RecipeID: req.RecipeID,
		Date:     req.Date,
		Servings: req.Servings,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"id": plannedID})
}

// Unplan handles DELETE /api/v1/mealplan/{id}.
func (h *MealPlanHandler) Unplan(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	plannedID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.mealPlanService.Unplan(r.Context(), userID, plannedID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
