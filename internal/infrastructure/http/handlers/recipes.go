package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/ports/inbound"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// RecipeHandler serves the recipe endpoints.
type RecipeHandler struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewRecipeHandler creates the recipe handler.
func NewRecipeHandler(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		logger:        logger.Named("recipe-handler"),
	}
}

type ingredientLineRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Amount   string  `json:"amount"`
	Optional bool    `json:"optional"`
}

type createRecipeRequest struct {
	Title        string                  `json:"title" validate:"required,min=1,max=200"`
	Description  string                  `json:"description" validate:"max=2000"`
	Servings     int                     `json:"servings" validate:"required,gt=0"`
	Ingredients  []ingredientLineRequest `json:"ingredients" validate:"required,min=1,dive"`
	Instructions []string                `json:"instructions" validate:"required,min=1"`
}

// Create handles POST /api/v1/recipes.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req createRecipeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	cmd := inbound.CreateRecipeCommand{
		AuthorID:     userID,
		Title:        req.Title,
		Description:  req.Description,
		Servings:     req.Servings,
		Instructions: req.Instructions,
	}
	for _, line := range req.Ingredients {
		cmd.Ingredients = append(cmd.Ingredients, inbound.IngredientLineDTO{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Amount:   line.Amount,
			Optional: line.Optional,
		})
	}

	recipe, err := h.recipeService.Create(r.Context(), cmd)
	if err != nil {
		logHandlerError(h.logger, "create recipe", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, recipe)
}

// Get handles GET /api/v1/recipes/{id}.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedUser(w, r); !ok {
		return
	}

	recipeID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	recipe, err := h.recipeService.Get(r.Context(), recipeID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

// List handles GET /api/v1/recipes with offset/limit paging.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	recipes, total, err := h.recipeService.ListByUser(r.Context(), userID, offset, limit)
	if err != nil {
		logHandlerError(h.logger, "list recipes", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"recipes": recipes,
		"total":   total,
		"offset":  offset,
		"limit":   limit,
	})
}

type generateRecipeRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3,max=500"`
	System string `json:"system" validate:"omitempty,oneof=metric us"`
}

// Generate handles POST /api/v1/recipes/generate.
func (h *RecipeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req generateRecipeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	system := measurement.SystemUS
	if req.System == string(measurement.SystemMetric) {
		system = measurement.SystemMetric
	}

	recipe, err := h.recipeService.Generate(r.Context(), inbound.GenerateRecipeCommand{
		UserID: userID,
		Prompt: req.Prompt,
		System: system,
	})
	if err != nil {
		logHandlerError(h.logger, "generate recipe", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, recipe)
}

type markCookedRequest struct {
	Servings int `json:"servings" validate:"gte=0"`
}

// MarkCooked handles POST /api/v1/recipes/{id}/cooked. Cooking deducts the
// recipe's scaled ingredient demand from the caller's fridge.
func (h *RecipeHandler) MarkCooked(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	recipeID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req markCookedRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.recipeService.MarkCooked(r.Context(), userID, recipeID, req.Servings); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Delete handles DELETE /api/v1/recipes/{id}.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	recipeID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.recipeService.Delete(r.Context(), userID, recipeID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
