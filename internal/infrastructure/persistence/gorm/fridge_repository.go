package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/v2/internal/domain/pantry"
	"github.com/platewise/v2/internal/ports/outbound"
)

// FridgeRepository implements the fridge repository interface using GORM.
type FridgeRepository struct {
	db *gorm.DB
}

// NewFridgeRepository creates a new fridge repository.
func NewFridgeRepository(db *gorm.DB) outbound.FridgeRepository {
	return &FridgeRepository{db: db}
}

// ListByUser returns the user's fridge entries in insertion order.
func (r *FridgeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.FridgeEntry, error) {
	var models []FridgeEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]*pantry.FridgeEntry, len(models))
	for i := range models {
		entries[i] = ModelToFridgeEntry(&models[i])
	}
	return entries, nil
}

// Create creates a new fridge entry.
func (r *FridgeRepository) Create(ctx context.Context, entry *pantry.FridgeEntry) error {
	return r.db.WithContext(ctx).Create(FridgeEntryToModel(entry)).Error
}

// Update updates an existing fridge entry.
func (r *FridgeRepository) Update(ctx context.Context, entry *pantry.FridgeEntry) error {
	result := r.db.WithContext(ctx).Save(FridgeEntryToModel(entry))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("fridge entry not found")
	}
	return nil
}

// Delete deletes a fridge entry by ID.
func (r *FridgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&FridgeEntryModel{}, "id = ?", id).Error
}

// DeleteByUser deletes all of a user's fridge entries.
func (r *FridgeRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&FridgeEntryModel{}, "user_id = ?", userID).Error
}
