// Package search provides the application layer for external recipe search.
package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/errors"
)

const defaultSearchLimit = 10

// SearchService proxies the external recipe-search provider.
type SearchService struct {
	provider outbound.RecipeSearchService
	logger   *zap.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(provider outbound.RecipeSearchService, logger *zap.Logger) inbound.SearchService {
	return &SearchService{
		provider: provider,
		logger:   logger.Named("search-service"),
	}
}

// SearchRecipes queries the provider and maps hits to transport DTOs.
func (s *SearchService) SearchRecipes(ctx context.Context, query string, limit int) ([]inbound.WebRecipeDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewValidationError("search query must not be empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	hits, err := s.provider.Search(ctx, query, limit)
	if err != nil {
		s.logger.Warn("Recipe search failed", zap.String("query", query), zap.Error(err))
		return nil, errors.NewExternalServiceError("recipe search", err)
	}

	results := make([]inbound.WebRecipeDTO, 0, len(hits))
	for _, hit := range hits {
		dto := inbound.WebRecipeDTO{
			Title:       hit.Title,
			SourceURL:   hit.SourceURL,
			Description: hit.Description,
			Servings:    hit.Servings,
		}
		for _, ing := range hit.Ingredients {
			dto.Ingredients = append(dto.Ingredients, inbound.IngredientLineDTO{
				Name:   ing.Name,
				Amount: ing.Amount,
			})
		}
		results = append(results, dto)
	}
	return results, nil
}
