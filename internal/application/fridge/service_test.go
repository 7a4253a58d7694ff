package fridge

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/domain/pantry"
	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/pkg/errors"
)

type fakeFridgeRepo struct {
	entries []*pantry.FridgeEntry
}

func (f *fakeFridgeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.FridgeEntry, error) {
	var out []*pantry.FridgeEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeFridgeRepo) Create(ctx context.Context, entry *pantry.FridgeEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}
func (f *fakeFridgeRepo) Update(ctx context.Context, entry *pantry.FridgeEntry) error { return nil }
func (f *fakeFridgeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}
func (f *fakeFridgeRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	var kept []*pantry.FridgeEntry
	for _, e := range f.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

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

func newTestService(fridgeRepo *fakeFridgeRepo, catalog []ingredient.Ingredient) inbound.FridgeService {
	return NewFridgeService(fridgeRepo, &fakeIngredientRepo{catalog: catalog}, zap.NewNop())
}

func TestAddResolvesCatalogName(t *testing.T) {
	chicken, err := ingredient.New("chicken breast", ingredient.CategoryProteins, "g", 5)
	require.NoError(t, err)

	repo := &fakeFridgeRepo{}
	svc := newTestService(repo, []ingredient.Ingredient{*chicken})

	dto, err := svc.Add(context.Background(), inbound.AddFridgeItemCommand{
		UserID:   uuid.New(),
		Name:     "boneless chicken breast",
		Quantity: 500,
		Unit:     "g",
	})
	require.NoError(t, err)

	assert.Equal(t, chicken.ID, dto.IngredientID, "fuzzy match adopts the catalog record")
	assert.Equal(t, "chicken breast", dto.IngredientName)
	assert.Equal(t, 500.0, dto.Quantity)
}

func TestAddUnmatchedNameKeepsRawEntry(t *testing.T) {
	repo := &fakeFridgeRepo{}
	svc := newTestService(repo, nil)

	dto, err := svc.Add(context.Background(), inbound.AddFridgeItemCommand{
		UserID:   uuid.New(),
		Name:     "grandma's secret sauce",
		Quantity: 1,
		Unit:     "cup",
	})
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, dto.IngredientID)
	assert.Equal(t, "grandma's secret sauce", dto.IngredientName)
	assert.Equal(t, "cup", dto.Unit)
}

func TestAddMergesIntoExistingEntry(t *testing.T) {
	userID := uuid.New()
	existing, err := pantry.NewFridgeEntry(userID, uuid.Nil, "milk", 500, "ml")
	require.NoError(t, err)

	repo := &fakeFridgeRepo{entries: []*pantry.FridgeEntry{existing}}
	svc := newTestService(repo, nil)

	dto, err := svc.Add(context.Background(), inbound.AddFridgeItemCommand{
		UserID:   userID,
		Name:     "milk",
		Quantity: 1,
		Unit:     "l",
	})
	require.NoError(t, err)

	require.Len(t, repo.entries, 1, "same ingredient merges instead of duplicating")
	assert.InDelta(t, 1500, dto.Quantity, 0.01, "added liter converts into the entry's milliliters")
	assert.Equal(t, "ml", dto.Unit)
}

func TestAddRejectsBlankNameAndNegativeQuantity(t *testing.T) {
	svc := newTestService(&fakeFridgeRepo{}, nil)

	_, err := svc.Add(context.Background(), inbound.AddFridgeItemCommand{UserID: uuid.New(), Name: "  "})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	_, err = svc.Add(context.Background(), inbound.AddFridgeItemCommand{UserID: uuid.New(), Name: "milk", Quantity: -1})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestUpdateQuantity(t *testing.T) {
	userID := uuid.New()
	entry, err := pantry.NewFridgeEntry(userID, uuid.Nil, "rice", 500, "g")
	require.NoError(t, err)

	repo := &fakeFridgeRepo{entries: []*pantry.FridgeEntry{entry}}
	svc := newTestService(repo, nil)

	dto, err := svc.UpdateQuantity(context.Background(), userID, entry.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, dto.Quantity)

	_, err = svc.UpdateQuantity(context.Background(), userID, entry.ID, -5)
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestRemoveChecksOwnership(t *testing.T) {
	owner := uuid.New()
	entry, err := pantry.NewFridgeEntry(owner, uuid.Nil, "rice", 500, "g")
	require.NoError(t, err)

	repo := &fakeFridgeRepo{entries: []*pantry.FridgeEntry{entry}}
	svc := newTestService(repo, nil)

	err = svc.Remove(context.Background(), uuid.New(), entry.ID)
	assert.True(t, errors.Is(err, errors.CodeFridgeEntryNotFound), "another user's entry looks like it does not exist")
	require.Len(t, repo.entries, 1)

	require.NoError(t, svc.Remove(context.Background(), owner, entry.ID))
	assert.Empty(t, repo.entries)
}

func TestClearDeletesOnlyOwnEntries(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	a, err := pantry.NewFridgeEntry(alice, uuid.Nil, "rice", 500, "g")
	require.NoError(t, err)
	b, err := pantry.NewFridgeEntry(bob, uuid.Nil, "milk", 1, "l")
	require.NoError(t, err)

	repo := &fakeFridgeRepo{entries: []*pantry.FridgeEntry{a, b}}
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Clear(context.Background(), alice))
	require.Len(t, repo.entries, 1)
	assert.Equal(t, bob, repo.entries[0].UserID)
}
