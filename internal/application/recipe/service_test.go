package recipe

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/pantry"
	"github.com/platewise/v2/internal/domain/recipe"
	"github.com/platewise/v2/internal/domain/user"
	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/errors"
)

type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*recipe.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[uuid.UUID]*recipe.Recipe)}
}

func (f *fakeRecipeRepo) Create(ctx context.Context, r *recipe.Recipe) error {
	f.recipes[r.ID()] = r
	return nil
}
func (f *fakeRecipeRepo) Update(ctx context.Context, r *recipe.Recipe) error {
	f.recipes[r.ID()] = r
	return nil
}
func (f *fakeRecipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.recipes, id)
	return nil
}
func (f *fakeRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	return f.recipes[id], nil
}
func (f *fakeRecipeRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	var out []*recipe.Recipe
	for _, r := range f.recipes {
		if r.AuthorID() == userID {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

type stubUserRepo struct {
	known map[uuid.UUID]bool
}

func (f *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *stubUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, nil
}
func (f *stubUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (f *stubUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

type fakeFridgeRepo struct {
	entries []*pantry.FridgeEntry
}

func (f *fakeFridgeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.FridgeEntry, error) {
	return f.entries, nil
}
func (f *fakeFridgeRepo) Create(ctx context.Context, entry *pantry.FridgeEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}
func (f *fakeFridgeRepo) Update(ctx context.Context, entry *pantry.FridgeEntry) error { return nil }
func (f *fakeFridgeRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (f *fakeFridgeRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error    { return nil }

type fakeIngredientRepo struct {
	catalog []ingredient.Ingredient
}

func (f *fakeIngredientRepo) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	return f.catalog, nil
}
func (f *fakeIngredientRepo) FindByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	return nil, nil
}
func (f *fakeIngredientRepo) Search(ctx context.Context, query string, limit int) ([]ingredient.Ingredient, error) {
	return nil, nil
}

type fakeAIService struct {
	generated *outbound.GeneratedRecipe
}

func (f *fakeAIService) GenerateRecipe(ctx context.Context, prompt string, system measurement.System) (*outbound.GeneratedRecipe, error) {
	return f.generated, nil
}

type testDeps struct {
	recipeRepo *fakeRecipeRepo
	fridgeRepo *fakeFridgeRepo
	userID     uuid.UUID
	svc        inbound.RecipeService
}

func newTestService(t *testing.T, catalog []ingredient.Ingredient, ai outbound.AIService) testDeps {
	t.Helper()
	userID := uuid.New()
	recipeRepo := newFakeRecipeRepo()
	fridgeRepo := &fakeFridgeRepo{}
	svc := NewRecipeService(
		recipeRepo,
		&stubUserRepo{known: map[uuid.UUID]bool{userID: true}},
		fridgeRepo,
		&fakeIngredientRepo{catalog: catalog},
		nil,
		ai,
		zap.NewNop(),
	)
	return testDeps{recipeRepo: recipeRepo, fridgeRepo: fridgeRepo, userID: userID, svc: svc}
}

func TestCreateParsesLegacyAmountStrings(t *testing.T) {
	deps := newTestService(t, nil, nil)

	dto, err := deps.svc.Create(context.Background(), inbound.CreateRecipeCommand{
		AuthorID:    deps.userID,
		Title:       "Pancakes",
		Servings:    4,
		Instructions: []string{"mix", "fry"},
		Ingredients: []inbound.IngredientLineDTO{
			{Name: "flour", Amount: "1 1/2 cups"},
			{Name: "milk", Quantity: 300, Unit: "ml"},
		},
	})
	require.NoError(t, err)
	require.Len(t, dto.Ingredients, 2)

	flour := dto.Ingredients[0]
	assert.Equal(t, 1.5, flour.Quantity, "combined amount string parses at ingestion")
	assert.Equal(t, "cup", flour.Unit)

	milk := dto.Ingredients[1]
	assert.Equal(t, 300.0, milk.Quantity)
	assert.Equal(t, "ml", milk.Unit)
}

func TestCreateAssignsCatalogCategory(t *testing.T) {
	chicken, err := ingredient.New("chicken breast", ingredient.CategoryProteins, "g", 5)
	require.NoError(t, err)
	deps := newTestService(t, []ingredient.Ingredient{*chicken}, nil)

	dto, err := deps.svc.Create(context.Background(), inbound.CreateRecipeCommand{
		AuthorID:     deps.userID,
		Title:        "Grilled chicken",
		Instructions: []string{"grill"},
		Ingredients:  []inbound.IngredientLineDTO{{Name: "chicken breast", Quantity: 200, Unit: "g"}},
	})
	require.NoError(t, err)

	stored := deps.recipeRepo.recipes[dto.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "proteins", stored.Ingredients()[0].Category)
}

func TestCreateUnknownAuthorFails(t *testing.T) {
	deps := newTestService(t, nil, nil)

	_, err := deps.svc.Create(context.Background(), inbound.CreateRecipeCommand{
		AuthorID:     uuid.New(),
		Title:        "Orphan recipe",
		Instructions: []string{"n/a"},
		Ingredients:  []inbound.IngredientLineDTO{{Name: "salt"}},
	})
	assert.True(t, errors.Is(err, errors.CodeUserNotFound))
}

func TestGeneratePersistsProvenanceAndParsesAmounts(t *testing.T) {
	ai := &fakeAIService{generated: &outbound.GeneratedRecipe{
		Title:       "Tomato soup",
		Description: "A simple soup",
		Servings:    2,
		PrepMinutes: 10,
		CookMinutes: 20,
		Ingredients: []outbound.GeneratedIngredient{
			{Name: "tomato", Amount: "400 g", Available: true},
			{Name: "salt", Amount: "to taste"},
		},
		Instructions: []string{"simmer", "blend"},
		Calories:     180,
		Model:        "gpt-4o-mini",
	}}
	deps := newTestService(t, nil, ai)

	dto, err := deps.svc.Generate(context.Background(), inbound.GenerateRecipeCommand{
		UserID: deps.userID,
		Prompt: "cozy tomato soup",
		System: measurement.SystemMetric,
	})
	require.NoError(t, err)

	assert.True(t, dto.AIGenerated)
	require.Len(t, dto.Ingredients, 2)
	assert.Equal(t, 400.0, dto.Ingredients[0].Quantity)
	assert.Equal(t, "g", dto.Ingredients[0].Unit)
	assert.Equal(t, 0.0, dto.Ingredients[1].Quantity, "malformed amount degrades to zero")

	stored := deps.recipeRepo.recipes[dto.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "cozy tomato soup", stored.AIPrompt())
	assert.Equal(t, "gpt-4o-mini", stored.AIModel())
	assert.True(t, stored.Ingredients()[0].Available)
}

func TestMarkCookedDeductsScaledDemand(t *testing.T) {
	deps := newTestService(t, nil, nil)

	r, err := recipe.NewRecipe("Chicken rice", "", deps.userID, 2)
	require.NoError(t, err)
	require.NoError(t, r.AddIngredient(recipe.IngredientLine{Name: "chicken breast", Quantity: 200, Unit: "g"}))
	require.NoError(t, r.AddInstruction("cook"))
	deps.recipeRepo.recipes[r.ID()] = r

	entry, err := pantry.NewFridgeEntry(deps.userID, uuid.Nil, "chicken breast", 500, "g")
	require.NoError(t, err)
	deps.fridgeRepo.entries = []*pantry.FridgeEntry{entry}

	// Cooking 4 servings of a 2-serving recipe doubles the deduction.
	require.NoError(t, deps.svc.MarkCooked(context.Background(), deps.userID, r.ID(), 4))
	assert.InDelta(t, 100, entry.Quantity, 0.01)
}

func TestMarkCookedFloorsAtZero(t *testing.T) {
	deps := newTestService(t, nil, nil)

	r, err := recipe.NewRecipe("Big stew", "", deps.userID, 1)
	require.NoError(t, err)
	require.NoError(t, r.AddIngredient(recipe.IngredientLine{Name: "potato", Quantity: 2, Unit: "kg"}))
	require.NoError(t, r.AddInstruction("stew"))
	deps.recipeRepo.recipes[r.ID()] = r

	entry, err := pantry.NewFridgeEntry(deps.userID, uuid.Nil, "potato", 500, "g")
	require.NoError(t, err)
	deps.fridgeRepo.entries = []*pantry.FridgeEntry{entry}

	require.NoError(t, deps.svc.MarkCooked(context.Background(), deps.userID, r.ID(), 1))
	assert.Equal(t, 0.0, entry.Quantity)
	assert.True(t, entry.IsEmpty())
}

func TestDeleteRequiresAuthor(t *testing.T) {
	deps := newTestService(t, nil, nil)

	r, err := recipe.NewRecipe("Private dish", "", deps.userID, 1)
	require.NoError(t, err)
	deps.recipeRepo.recipes[r.ID()] = r

	err = deps.svc.Delete(context.Background(), uuid.New(), r.ID())
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	require.NoError(t, deps.svc.Delete(context.Background(), deps.userID, r.ID()))
	assert.NotContains(t, deps.recipeRepo.recipes, r.ID())
}
