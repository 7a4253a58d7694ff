// Package user contains the user account aggregate. Authentication and
// session mechanics live in the security service; the domain only records
// identity and preferences.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v2/internal/domain/measurement"
)

var (
	ErrInvalidEmail = errors.New("a valid email address is required")
	ErrEmptyName    = errors.New("name is required")
)

// User is the account aggregate. UnitSystem is the user's preferred
// measurement system, read by every display-formatting call site.
type User struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	unitSystem   measurement.System
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an account with the US unit system as default.
func NewUser(email, name, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		unitSystem:   measurement.SystemUS,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Restore rebuilds a user from persisted state.
func Restore(id uuid.UUID, email, name, passwordHash string, unitSystem measurement.System, createdAt, updatedAt time.Time) *User {
	if unitSystem != measurement.SystemMetric {
		unitSystem = measurement.SystemUS
	}
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		unitSystem:   unitSystem,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID                  { return u.id }
func (u *User) Email() string                  { return u.email }
func (u *User) Name() string                   { return u.name }
func (u *User) PasswordHash() string           { return u.passwordHash }
func (u *User) UnitSystem() measurement.System { return u.unitSystem }
func (u *User) CreatedAt() time.Time           { return u.createdAt }
func (u *User) UpdatedAt() time.Time           { return u.updatedAt }

// SetUnitSystem updates the preferred measurement system.
func (u *User) SetUnitSystem(system measurement.System) {
	if system == measurement.SystemMetric {
		u.unitSystem = measurement.SystemMetric
	} else {
		u.unitSystem = measurement.SystemUS
	}
	u.updatedAt = time.Now()
}
