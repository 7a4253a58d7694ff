package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/platewise/v2/internal/ports/inbound"
)

// SearchHandler serves the external recipe-search endpoint.
type SearchHandler struct {
	searchService inbound.SearchService
	logger        *zap.Logger
}

// NewSearchHandler creates the search handler.
func NewSearchHandler(searchService inbound.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger.Named("search-handler"),
	}
}

// Search handles GET /api/v1/recipes/search?q=&limit=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedUser(w, r); !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.searchService.SearchRecipes(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
