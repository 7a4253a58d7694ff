// Package gorm provides the GORM models and repository implementations.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	UnitSystem   string    `gorm:"type:varchar(10);default:'us'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	Recipes       []RecipeModel      `gorm:"foreignKey:AuthorID"`
	FridgeEntries []FridgeEntryModel `gorm:"foreignKey:UserID"`
}

// IngredientModel represents the GORM model for catalog ingredients.
type IngredientModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category       string    `gorm:"type:varchar(50);index;default:'other'"`
	DefaultUnit    string    `gorm:"type:varchar(20)"`
	FridgeLifeDays int       `gorm:"default:7"`
	Calories       float64   `gorm:"default:0"`
	Protein        float64   `gorm:"default:0"`
	Carbs          float64   `gorm:"default:0"`
	Fat            float64   `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IngredientLineRecord is the JSON shape of one recipe ingredient line.
// Quantity and unit are stored as typed fields, never as a combined string.
type IngredientLineRecord struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category,omitempty"`
	Optional  bool    `json:"optional,omitempty"`
	Available bool    `json:"available,omitempty"`
}

// RecipeModel represents the GORM model for recipes.
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	AuthorID    uuid.UUID `gorm:"type:char(36);not null;index"`

	Ingredients  IngredientLines `gorm:"type:json"`
	Instructions StringSlice     `gorm:"type:json"`
	Servings     int             `gorm:"default:1"`

	PrepTimeMinutes int `gorm:"column:prep_time_minutes;default:0"`
	CookTimeMinutes int `gorm:"column:cook_time_minutes;default:0"`

	Calories int `gorm:"default:0"`

	AIGenerated bool   `gorm:"default:false"`
	AIPrompt    string `gorm:"type:text"`
	AIModel     string `gorm:"type:varchar(100)"`

	Favorite  bool `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	Author UserModel `gorm:"foreignKey:AuthorID"`
}

// FridgeEntryModel represents the GORM model for fridge inventory entries.
type FridgeEntryModel struct {
	ID             uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID  `gorm:"type:char(36);not null;index"`
	IngredientID   *uuid.UUID `gorm:"type:char(36);index"` // nullable for uncatalogued entries
	IngredientName string     `gorm:"type:varchar(255);not null"`
	Quantity       float64    `gorm:"not null;default:0"`
	Unit           string     `gorm:"type:varchar(20)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relationships
	User       UserModel        `gorm:"foreignKey:UserID"`
	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID"`
}

// PlannedMealModel represents the GORM model for calendar slots.
type PlannedMealModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID   uuid.UUID `gorm:"type:char(36);not null;index"`
	RecipeID uuid.UUID `gorm:"type:char(36);not null;index"`
	Date     time.Time `gorm:"not null;index"`
	Servings int       `gorm:"default:1"`
	CreatedAt time.Time

	// Relationships
	User   UserModel   `gorm:"foreignKey:UserID"`
	Recipe RecipeModel `gorm:"foreignKey:RecipeID"`
}

// StringSlice stores a string slice as JSON.
type StringSlice []string

// Scan implements the sql.Scanner interface.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface.
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// IngredientLines stores recipe ingredient lines as JSON.
type IngredientLines []IngredientLineRecord

// Scan implements the sql.Scanner interface.
func (l *IngredientLines) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientLines{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into IngredientLines", value)
	}
}

// Value implements the driver.Valuer interface.
func (l IngredientLines) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// BeforeCreate hook for UserModel.
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel.
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel.
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for FridgeEntryModel.
func (f *FridgeEntryModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for PlannedMealModel.
func (p *PlannedMealModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (UserModel) TableName() string {
	return "users"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (FridgeEntryModel) TableName() string {
	return "fridge_entries"
}

func (PlannedMealModel) TableName() string {
	return "planned_meals"
}

// AllModels lists every model for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&IngredientModel{},
		&RecipeModel{},
		&FridgeEntryModel{},
		&PlannedMealModel{},
	}
}
