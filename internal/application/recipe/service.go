// Package recipe provides the application layer for recipe management,
// generation and the cook flow.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/recipe"
	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/errors"
)

const recipeCacheTTL = time.Hour

// RecipeService implements the recipe use cases.
type RecipeService struct {
	recipeRepo     outbound.RecipeRepository
	userRepo       outbound.UserRepository
	fridgeRepo     outbound.FridgeRepository
	ingredientRepo outbound.IngredientRepository
	cache          outbound.CacheRepository
	aiService      outbound.AIService
	logger         *zap.Logger
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	userRepo outbound.UserRepository,
	fridgeRepo outbound.FridgeRepository,
	ingredientRepo outbound.IngredientRepository,
	cache outbound.CacheRepository,
	aiService outbound.AIService,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		userRepo:       userRepo,
		fridgeRepo:     fridgeRepo,
		ingredientRepo: ingredientRepo,
		cache:          cache,
		aiService:      aiService,
		logger:         logger.Named("recipe-service"),
	}
}

// Create creates a recipe from the command's ingredient lines. Lines that
// carry a legacy combined amount string are parsed into typed quantity and
// unit fields here, at the ingestion boundary.
func (s *RecipeService) Create(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating recipe",
		zap.String("title", cmd.Title),
		zap.String("author_id", cmd.AuthorID.String()),
	)

	exists, err := s.userRepo.Exists(ctx, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewDatabaseError("check user existence", err)
	}
	if !exists {
		return nil, errors.NewUserNotFoundError(cmd.AuthorID.String())
	}

	entity, err := recipe.NewRecipe(cmd.Title, cmd.Description, cmd.AuthorID, cmd.Servings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recipe entity")
	}

	catalog, err := s.ingredientRepo.List(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredient catalog", err)
	}

	for _, dto := range cmd.Ingredients {
		line := s.toLine(dto, catalog)
		if err := entity.AddIngredient(line); err != nil {
			return nil, errors.Wrap(err, "failed to add ingredient")
		}
	}
	for _, step := range cmd.Instructions {
		if err := entity.AddInstruction(step); err != nil {
			return nil, errors.Wrap(err, "failed to add instruction")
		}
	}

	if err := entity.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	dto := entityToDTO(entity)
	s.logger.Info("Recipe created",
		zap.String("recipe_id", dto.ID.String()),
		zap.String("title", dto.Title),
	)
	return dto, nil
}

// Get retrieves a recipe, serving from cache when possible.
func (s *RecipeService) Get(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	if cached := s.getCached(ctx, recipeID); cached != nil {
		return cached, nil
	}

	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	dto := entityToDTO(entity)
	s.putCached(ctx, dto)
	return dto, nil
}

// ListByUser returns a page of the user's recipes plus the total count.
func (s *RecipeService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]inbound.RecipeDTO, int, error) {
	recipes, total, err := s.recipeRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, errors.NewDatabaseError("list user recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, len(recipes))
	for i, r := range recipes {
		dtos[i] = *entityToDTO(r)
	}
	return dtos, total, nil
}

// Generate creates a recipe through the AI provider and persists it with
// provenance. Generated ingredient amounts arrive as combined strings and go
// through the same single parsing routine as imported recipes.
func (s *RecipeService) Generate(ctx context.Context, cmd inbound.GenerateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Generating recipe",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("prompt", cmd.Prompt),
	)

	exists, err := s.userRepo.Exists(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("check user existence", err)
	}
	if !exists {
		return nil, errors.NewUserNotFoundError(cmd.UserID.String())
	}

	generated, err := s.aiService.GenerateRecipe(ctx, cmd.Prompt, cmd.System)
	if err != nil {
		return nil, errors.NewExternalServiceError("recipe generation", err)
	}

	entity, err := recipe.NewRecipe(generated.Title, generated.Description, cmd.UserID, generated.Servings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generated recipe")
	}

	catalog, err := s.ingredientRepo.List(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredient catalog", err)
	}
	for _, gen := range generated.Ingredients {
		line := recipe.ParseIngredientLine(gen.Name, gen.Amount)
		line.Available = gen.Available
		if matched := ingredient.FindMatch(line.Name, catalog); matched != nil {
			line.Category = string(matched.Category)
		}
		if err := entity.AddIngredient(line); err != nil {
			return nil, errors.Wrap(err, "failed to add generated ingredient")
		}
	}
	for _, step := range generated.Instructions {
		if err := entity.AddInstruction(step); err != nil {
			return nil, errors.Wrap(err, "failed to add generated instruction")
		}
	}

	entity.SetTiming(
		time.Duration(generated.PrepMinutes)*time.Minute,
		time.Duration(generated.CookMinutes)*time.Minute,
	)
	if generated.Calories > 0 {
		entity.SetNutrition(&recipe.NutritionEstimate{Calories: generated.Calories})
	}
	entity.MarkAIGenerated(cmd.Prompt, generated.Model)

	if err := entity.Validate(); err != nil {
		return nil, errors.NewExternalServiceError("recipe generation", err)
	}
	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create generated recipe", err)
	}

	dto := entityToDTO(entity)
	s.logger.Info("Recipe generated",
		zap.String("recipe_id", dto.ID.String()),
		zap.String("title", dto.Title),
		zap.String("model", generated.Model),
	)
	return dto, nil
}

// MarkCooked deducts the recipe's ingredient demand, scaled to the cooked
// serving count, from the user's fridge. Fridge entries floor at zero and
// ingredients without a fridge match are skipped.
func (s *RecipeService) MarkCooked(ctx context.Context, userID, recipeID uuid.UUID, servings int) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	entries, err := s.fridgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return errors.NewDatabaseError("list fridge entries", err)
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.IngredientName
	}

	multiplier := entity.ServingMultiplier(servings)
	for _, line := range entity.Ingredients() {
		idx := ingredient.Match(line.Name, names)
		if idx < 0 {
			continue
		}
		entry := entries[idx]
		deducted := entry.Deduct(line.ScaledQuantity(multiplier), line.Unit)
		if err := s.fridgeRepo.Update(ctx, entry); err != nil {
			return errors.NewDatabaseError("update fridge entry", err)
		}
		s.logger.Debug("Fridge deducted for cooked meal",
			zap.String("ingredient", entry.IngredientName),
			zap.Float64("deducted", deducted),
			zap.String("unit", entry.Unit),
		)
	}

	s.logger.Info("Recipe marked cooked",
		zap.String("user_id", userID.String()),
		zap.String("recipe_id", recipeID.String()),
		zap.Int("servings", servings),
	)
	return nil
}

// Delete removes a recipe after an ownership check.
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}
	if entity.AuthorID() != userID {
		return errors.NewForbiddenError("only the author can delete a recipe")
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}
	s.dropCached(ctx, recipeID)

	s.logger.Info("Recipe deleted",
		zap.String("recipe_id", recipeID.String()),
	)
	return nil
}

// toLine converts an ingredient DTO to a domain line. A non-empty legacy
// Amount string wins over the typed pair; categories come from the catalog
// when the name matches.
func (s *RecipeService) toLine(dto inbound.IngredientLineDTO, catalog []ingredient.Ingredient) recipe.IngredientLine {
	var line recipe.IngredientLine
	if dto.Amount != "" {
		line = recipe.ParseIngredientLine(dto.Name, dto.Amount)
	} else {
		line = recipe.IngredientLine{
			Name:     strings.TrimSpace(dto.Name),
			Quantity: dto.Quantity,
			Unit:     measurement.NormalizeUnit(dto.Unit),
		}
	}
	line.Optional = dto.Optional

	if matched := ingredient.FindMatch(line.Name, catalog); matched != nil {
		line.Category = string(matched.Category)
	}
	return line
}

func entityToDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	lines := entity.Ingredients()
	ingredients := make([]inbound.IngredientLineDTO, len(lines))
	for i, line := range lines {
		ingredients[i] = inbound.IngredientLineDTO{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Optional: line.Optional,
		}
	}

	return &inbound.RecipeDTO{
		ID:           entity.ID(),
		Title:        entity.Title(),
		Description:  entity.Description(),
		Servings:     entity.Servings(),
		PrepMinutes:  int(entity.PrepTime().Minutes()),
		CookMinutes:  int(entity.CookTime().Minutes()),
		Ingredients:  ingredients,
		Instructions: entity.Instructions(),
		AIGenerated:  entity.IsAIGenerated(),
		Favorite:     entity.IsFavorite(),
	}
}

func recipeCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("recipe:%s", id.String())
}

func (s *RecipeService) getCached(ctx context.Context, id uuid.UUID) *inbound.RecipeDTO {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, recipeCacheKey(id))
	if err != nil || len(raw) == 0 {
		return nil
	}
	var dto inbound.RecipeDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil
	}
	return &dto
}

func (s *RecipeService) putCached(ctx context.Context, dto *inbound.RecipeDTO) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, recipeCacheKey(dto.ID), raw, recipeCacheTTL); err != nil {
		s.logger.Debug("Recipe cache write failed", zap.Error(err))
	}
}

func (s *RecipeService) dropCached(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, recipeCacheKey(id)); err != nil {
		s.logger.Debug("Recipe cache invalidation failed", zap.Error(err))
	}
}
