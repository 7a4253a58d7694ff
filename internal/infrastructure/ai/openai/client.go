// Package openai provides recipe generation through an OpenAI-compatible
// chat-completion API.
package openai

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

// Client implements the AIService interface using the OpenAI API.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new OpenAI client from configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	baseURL := cfg.AI.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		apiKey:      cfg.AI.OpenAIKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       cfg.AI.OpenAIModel,
		maxTokens:   cfg.AI.MaxTokens,
		temperature: cfg.AI.Temperature,
		client:      &http.Client{Timeout: timeout},
		logger:      logger.Named("openai"),
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// generatedRecipe is the JSON shape the model is instructed to emit.
// Ingredient amounts are combined "number + unit" strings; the application
// layer parses them once at ingestion.
type generatedRecipe struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Servings     int    `json:"servings"`
	PrepMinutes  int    `json:"prep_time_minutes"`
	CookMinutes  int    `json:"cook_time_minutes"`
	Ingredients  []struct {
		Name      string `json:"name"`
		Amount    string `json:"amount"`
		Available bool   `json:"available"`
	} `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     int      `json:"calories_per_serving"`
}

// GenerateRecipe generates a recipe for the prompt, instructing the model
// to emit amounts in the user's preferred measurement system.
func (c *Client) GenerateRecipe(ctx context.Context, prompt string, system measurement.System) (*outbound.GeneratedRecipe, error) {
	raw, err := c.chatCompletion(ctx, buildSystemPrompt(system), fmt.Sprintf("Create a recipe for: %s", prompt))
	if err != nil {
		return nil, err
	}

	parsed, err := parseRecipeJSON(raw)
	if err != nil {
		c.logger.Error("Failed to parse generation response",
			zap.String("model", c.model),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to parse generated recipe: %w", err)
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
			Name:      ing.Name,
			Amount:    ing.Amount,
			Available: ing.Available,
		})
	}

	c.logger.Info("Recipe generated",
		zap.String("model", c.model),
		zap.String("title", result.Title),
		zap.Int("ingredients", len(result.Ingredients)),
	)
	return result, nil
}

func buildSystemPrompt(system measurement.System) string {
	var b strings.Builder
	b.WriteString(`You are an expert chef. Respond with ONLY a valid JSON object, no markdown fences or prose, in this exact format:

{
  "title": "Recipe Name",
  "description": "Brief description",
  "servings": 4,
  "prep_time_minutes": 15,
  "cook_time_minutes": 25,
  "ingredients": [
    {"name": "ingredient name", "amount": "1 1/2 cups", "available": false}
  ],
  "instructions": ["Step 1", "Step 2"],
  "calories_per_serving": 350
}

`)
	b.WriteString(measurement.UnitInstructions(system))
	return b.String()
}

func (c *Client) chatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("API returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// parseRecipeJSON extracts the recipe object, tolerating the markdown fences
// some models wrap around JSON despite instructions.
func parseRecipeJSON(raw string) (*generatedRecipe, error) {
	content := strings.TrimSpace(raw)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if i := strings.LastIndex(content, "```"); i >= 0 {
			content = content[:i]
		}
		content = strings.TrimSpace(content)
	}

	var parsed generatedRecipe
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, err
	}
	if parsed.Title == "" {
		return nil, fmt.Errorf("generated recipe has no title")
	}
	return &parsed, nil
}

var _ outbound.AIService = (*Client)(nil)
