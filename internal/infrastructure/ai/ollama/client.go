// Package ollama provides recipe generation through a local Ollama server.
// It is the self-hosted alternative to the OpenAI provider and is selected
// with ai.provider=ollama.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/infrastructure/config"
	"github.com/platewise/v2/internal/ports/outbound"
)

const defaultBaseURL = "http://localhost:11434"

// Client implements the AIService interface against the Ollama chat API.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new Ollama client from configuration. BaseURL and
// model fall back to a stock local install running llama3.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	baseURL := cfg.AI.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.AI.OpenAIModel
	if model == "" {
		model = "llama3"
	}
	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		// Local models are slow on first load.
		timeout = 120 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("ollama"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

type generatedRecipe struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Servings    int    `json:"servings"`
	PrepMinutes int    `json:"prep_time_minutes"`
	CookMinutes int    `json:"cook_time_minutes"`
	Ingredients []struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
	} `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     int      `json:"calories_per_serving"`
}

// GenerateRecipe generates a recipe for the prompt, instructing the model
// to emit amounts in the user's preferred measurement system.
func (c *Client) GenerateRecipe(ctx context.Context, prompt string, system measurement.System) (*outbound.GeneratedRecipe, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: buildSystemPrompt(system)},
			{Role: "user", Content: fmt.Sprintf("Create a recipe for: %s", prompt)},
		},
		Stream: false,
		Format: "json",
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var parsed generatedRecipe
	if err := json.Unmarshal([]byte(completion.Message.Content), &parsed); err != nil {
		c.logger.Error("Failed to parse generation response",
			zap.String("model", c.model),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to parse generated recipe: %w", err)
	}
	if parsed.Title == "" {
		return nil, fmt.Errorf("generated recipe has no title")
	}

	result := &outbound.GeneratedRecipe{
		Title:        parsed.Title,
		Description:  parsed.Description,
		Servings:     parsed.Servings,
		PrepMinutes:  parsed.PrepMinutes,
		CookMinutes:  parsed.CookMinutes,
		Instructions: parsed.Instructions,
		Calories:     parsed.Calories,
		Model:        c.model,
	}
	for _, ing := range parsed.Ingredients {
		result.Ingredients = append(result.Ingredients, outbound.GeneratedIngredient{
			Name:   ing.Name,
			Amount: ing.Amount,
		})
	}

	c.logger.Info("Recipe generated",
		zap.String("model", c.model),
		zap.String("title", result.Title),
	)
	return result, nil
}

func buildSystemPrompt(system measurement.System) string {
	var b strings.Builder
	b.WriteString(`You are an expert chef. Respond with ONLY a valid JSON object in this exact format:

{
  "title": "Recipe Name",
  "description": "Brief description",
  "servings": 4,
  "prep_time_minutes": 15,
  "cook_time_minutes": 25,
  "ingredients": [
    {"name": "ingredient name", "amount": "1 1/2 cups"}
  ],
  "instructions": ["Step 1", "Step 2"],
  "calories_per_serving": 350
}

`)
	b.WriteString(measurement.UnitInstructions(system))
	return b.String()
}

// HealthCheck verifies the Ollama server is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}
	return nil
}

var _ outbound.AIService = (*Client)(nil)
