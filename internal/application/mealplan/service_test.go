package mealplan

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/recipe"
	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/errors"
)

type fakeMealPlanRepo struct {
	records []outbound.PlannedMealRecord
}

func (f *fakeMealPlanRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]outbound.PlannedMealRecord, error) {
	var out []outbound.PlannedMealRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeMealPlanRepo) Create(ctx context.Context, record *outbound.PlannedMealRecord) error {
	f.records = append(f.records, *record)
	return nil
}
func (f *fakeMealPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*recipe.Recipe
}

func (f *fakeRecipeRepo) Create(ctx context.Context, r *recipe.Recipe) error { return nil }
func (f *fakeRecipeRepo) Update(ctx context.Context, r *recipe.Recipe) error { return nil }
func (f *fakeRecipeRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakeRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	return f.recipes[id], nil
}
func (f *fakeRecipeRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	return nil, 0, nil
}

func TestPlanDefaultsServingsToRecipe(t *testing.T) {
	r, err := recipe.NewRecipe("Family lasagna", "", uuid.New(), 6)
	require.NoError(t, err)

	planRepo := &fakeMealPlanRepo{}
	svc := NewMealPlanService(planRepo, &fakeRecipeRepo{recipes: map[uuid.UUID]*recipe.Recipe{r.ID(): r}}, zap.NewNop())

	userID := uuid.New()
	id, err := svc.Plan(context.Background(), inbound.PlanMealCommand{
		UserID:   userID,
		RecipeID: r.ID(),
		Date:     "2026-09-02",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.Len(t, planRepo.records, 1)
	assert.Equal(t, 6, planRepo.records[0].Servings)
}

func TestPlanRejectsBadDateAndMissingRecipe(t *testing.T) {
	svc := NewMealPlanService(&fakeMealPlanRepo{}, &fakeRecipeRepo{recipes: map[uuid.UUID]*recipe.Recipe{}}, zap.NewNop())

	_, err := svc.Plan(context.Background(), inbound.PlanMealCommand{
		UserID:   uuid.New(),
		RecipeID: uuid.New(),
		Date:     "next tuesday",
	})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	_, err = svc.Plan(context.Background(), inbound.PlanMealCommand{
		UserID:   uuid.New(),
		RecipeID: uuid.New(),
		Date:     "2026-09-02",
	})
	assert.True(t, errors.Is(err, errors.CodeRecipeNotFound))
}

func TestUnplanChecksOwnership(t *testing.T) {
	userID := uuid.New()
	record := outbound.PlannedMealRecord{ID: uuid.New(), UserID: userID, RecipeID: uuid.New(), Servings: 2}
	planRepo := &fakeMealPlanRepo{records: []outbound.PlannedMealRecord{record}}
	svc := NewMealPlanService(planRepo, &fakeRecipeRepo{}, zap.NewNop())

	err := svc.Unplan(context.Background(), uuid.New(), record.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound), "another user's slot looks like it does not exist")
	require.Len(t, planRepo.records, 1)

	require.NoError(t, svc.Unplan(context.Background(), userID, record.ID))
	assert.Empty(t, planRepo.records)
}
