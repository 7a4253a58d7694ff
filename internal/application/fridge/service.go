// Package fridge provides the application layer for fridge inventory
// management. Free-text ingredient names are resolved against the catalog by
// fuzzy match; unmatched names still get an entry so manual additions are
// never rejected.
package fridge

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/domain/pantry"
	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/errors"
)

// FridgeService implements the fridge inventory use cases.
type FridgeService struct {
	fridgeRepo     outbound.FridgeRepository
	ingredientRepo outbound.IngredientRepository
	logger         *zap.Logger
}

// NewFridgeService creates a new fridge service.
func NewFridgeService(
	fridgeRepo outbound.FridgeRepository,
	ingredientRepo outbound.IngredientRepository,
	logger *zap.Logger,
) inbound.FridgeService {
	return &FridgeService{
		fridgeRepo:     fridgeRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger.Named("fridge-service"),
	}
}

// List returns the user's fridge entries.
func (s *FridgeService) List(ctx context.Context, userID uuid.UUID) ([]inbound.FridgeEntryDTO, error) {
	entries, err := s.fridgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list fridge entries", err)
	}

	dtos := make([]inbound.FridgeEntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = entryToDTO(entry)
	}
	return dtos, nil
}

// Add puts an ingredient into the fridge. When an entry for the same
// ingredient already exists the quantity merges into it, converted into the
// existing entry's unit.
func (s *FridgeService) Add(ctx context.Context, cmd inbound.AddFridgeItemCommand) (*inbound.FridgeEntryDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("ingredient name is required")
	}
	if cmd.Quantity < 0 {
		return nil, errors.NewValidationError("quantity cannot be negative")
	}

	entries, err := s.fridgeRepo.ListByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("list fridge entries", err)
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.IngredientName
	}
	if idx := ingredient.Match(name, names); idx >= 0 {
		existing := entries[idx]
		existing.Add(cmd.Quantity, cmd.Unit)
		if err := s.fridgeRepo.Update(ctx, existing); err != nil {
			return nil, errors.NewDatabaseError("update fridge entry", err)
		}
		dto := entryToDTO(existing)
		s.logger.Info("Fridge entry merged",
			zap.String("user_id", cmd.UserID.String()),
			zap.String("ingredient", existing.IngredientName),
			zap.Float64("quantity", existing.Quantity),
		)
		return &dto, nil
	}

	catalogID, catalogName := s.resolveCatalog(ctx, name)
	entry, err := pantry.NewFridgeEntry(cmd.UserID, catalogID, catalogName, cmd.Quantity, cmd.Unit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fridge entry")
	}
	if err := s.fridgeRepo.Create(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("create fridge entry", err)
	}

	dto := entryToDTO(entry)
	s.logger.Info("Fridge entry added",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("ingredient", entry.IngredientName),
	)
	return &dto, nil
}

// MarkPurchased records a shopping-list item as bought. The flow is the
// merge-or-create of Add; it exists as its own operation so handlers can
// log and meter the purchase path separately.
func (s *FridgeService) MarkPurchased(ctx context.Context, cmd inbound.AddFridgeItemCommand) (*inbound.FridgeEntryDTO, error) {
	dto, err := s.Add(ctx, cmd)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Shopping item marked purchased",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("ingredient", dto.IngredientName),
	)
	return dto, nil
}

// UpdateQuantity replaces an entry's quantity from a manual edit.
func (s *FridgeService) UpdateQuantity(ctx context.Context, userID, entryID uuid.UUID, quantity float64) (*inbound.FridgeEntryDTO, error) {
	entry, err := s.findOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := entry.SetQuantity(quantity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.fridgeRepo.Update(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("update fridge entry", err)
	}

	dto := entryToDTO(entry)
	return &dto, nil
}

// Remove deletes one entry.
func (s *FridgeService) Remove(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, entryID); err != nil {
		return err
	}
	if err := s.fridgeRepo.Delete(ctx, entryID); err != nil {
		return errors.NewDatabaseError("delete fridge entry", err)
	}
	return nil
}

// Clear empties the user's fridge.
func (s *FridgeService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.fridgeRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.NewDatabaseError("clear fridge", err)
	}
	s.logger.Info("Fridge cleared", zap.String("user_id", userID.String()))
	return nil
}

// resolveCatalog fuzzy-matches a free-text name against the catalog. On a
// match the entry adopts the canonical name; otherwise the raw name is kept
// with a nil catalog ID.
func (s *FridgeService) resolveCatalog(ctx context.Context, name string) (uuid.UUID, string) {
	catalog, err := s.ingredientRepo.List(ctx)
	if err != nil {
		s.logger.Warn("Catalog lookup failed, keeping raw name",
			zap.String("name", name),
			zap.Error(err),
		)
		return uuid.Nil, name
	}
	if matched := ingredient.FindMatch(name, catalog); matched != nil {
		return matched.ID, matched.Name
	}
	return uuid.Nil, name
}

func (s *FridgeService) findOwned(ctx context.Context, userID, entryID uuid.UUID) (*pantry.FridgeEntry, error) {
	entries, err := s.fridgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list fridge entries", err)
	}
	for _, entry := range entries {
		if entry.ID == entryID {
			return entry, nil
		}
	}
	return nil, errors.NewFridgeEntryNotFoundError(entryID.String())
}

func entryToDTO(entry *pantry.FridgeEntry) inbound.FridgeEntryDTO {
	return inbound.FridgeEntryDTO{
		ID:             entry.ID,
		IngredientID:   entry.IngredientID,
		IngredientName: entry.IngredientName,
		Quantity:       entry.Quantity,
		Unit:           entry.Unit,
	}
}
