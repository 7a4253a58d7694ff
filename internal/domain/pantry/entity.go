// Package pantry contains the fridge inventory aggregate. A fridge entry
// records how much of one canonical ingredient a user has on hand.
package pantry

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v2/internal/domain/measurement"
)

var (
	ErrNegativeQuantity = errors.New("fridge quantity cannot be negative")
	ErrMissingOwner     = errors.New("fridge entry requires an owning user")
)

// FridgeEntry ties an ingredient, a quantity and a unit to an owning user.
// Entries are created when a user adds an ingredient or marks a shopping
// item purchased, deducted by cooking, and deleted explicitly or by bulk
// clear. Quantity never goes below zero.
type FridgeEntry struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	IngredientID   uuid.UUID
	IngredientName string
	Quantity       float64
	Unit           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewFridgeEntry creates a fridge entry with a normalized unit.
func NewFridgeEntry(userID, ingredientID uuid.UUID, ingredientName string, quantity float64, unit string) (*FridgeEntry, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	now := time.Now()
	return &FridgeEntry{
		ID:             uuid.New(),
		UserID:         userID,
		IngredientID:   ingredientID,
		IngredientName: ingredientName,
		Quantity:       quantity,
		Unit:           measurement.NormalizeUnit(unit),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Add increases the quantity, converting the added amount into the entry's
// unit first. Used when a purchased shopping item merges into an existing
// entry.
func (e *FridgeEntry) Add(amount float64, unit string) {
	converted := measurement.Convert(amount, unit, e.Unit, measurement.DetectIngredientType(e.IngredientName))
	e.Quantity += converted.Value
	e.UpdatedAt = time.Now()
}

// Deduct removes the given amount, converting it into the entry's unit.
// The result is floored at zero: cooking with slightly optimistic recipe
// amounts must never drive the fridge negative. Returns the amount actually
// deducted in the entry's unit.
func (e *FridgeEntry) Deduct(amount float64, unit string) float64 {
	converted := measurement.Convert(amount, unit, e.Unit, measurement.DetectIngredientType(e.IngredientName))

	deducted := converted.Value
	if deducted > e.Quantity {
		deducted = e.Quantity
	}
	e.Quantity -= deducted
	e.UpdatedAt = time.Now()
	return deducted
}

// SetQuantity replaces the quantity from a manual edit.
func (e *FridgeEntry) SetQuantity(quantity float64) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	e.Quantity = quantity
	e.UpdatedAt = time.Now()
	return nil
}

// IsEmpty reports whether the entry has been fully consumed.
func (e *FridgeEntry) IsEmpty() bool {
	return e.Quantity <= 0
}
