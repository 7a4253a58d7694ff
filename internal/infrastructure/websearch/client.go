// Package websearch provides recipe lookup through an external search
// provider.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v2/internal/infrastructure/config"
	"github.com/platewise/v2/internal/ports/outbound"
)

// Client implements the RecipeSearchService interface against a JSON search
// API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new search client from configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.Search.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.Search.BaseURL, "/"),
		apiKey:  cfg.Search.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("websearch"),
	}
}

type searchResponse struct {
	Results []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		Servings    int    `json:"servings"`
		Ingredients []struct {
			Name   string `json:"name"`
			Amount string `json:"amount"`
		} `json:"ingredients"`
	} `json:"results"`
}

// Search queries the provider for recipes matching the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]outbound.WebRecipe, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/recipes/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	recipes := make([]outbound.WebRecipe, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		recipe := outbound.WebRecipe{
			Title:       result.Title,
			SourceURL:   result.URL,
			Description: result.Description,
			Servings:    result.Servings,
		}
		for _, ing := range result.Ingredients {
			recipe.Ingredients = append(recipe.Ingredients, outbound.GeneratedIngredient{
				Name:   ing.Name,
				Amount: ing.Amount,
			})
		}
		recipes = append(recipes, recipe)
	}

	c.logger.Debug("Recipe search completed",
		zap.String("query", query),
		zap.Int("results", len(recipes)),
	)
	return recipes, nil
}

var _ outbound.RecipeSearchService = (*Client)(nil)
