// Package user provides the application layer for accounts, authentication
// and the unit-system preference.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/user"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/errors"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// UserService implements account use cases.
type UserService struct {
	userRepo  outbound.UserRepository
	jwtSecret []byte
	logger    *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo outbound.UserRepository, jwtSecret string, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		logger:    logger.Named("user-service"),
	}
}

// RegisterCommand contains user registration data.
type RegisterCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginCommand contains user login data.
type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO represents user data in responses.
type UserDTO struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	UnitSystem string    `json:"unitSystem"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuthResponse contains authentication response data.
type AuthResponse struct {
	User         UserDTO `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	ExpiresIn    int     `json:"expiresIn"`
}

// Claims represents the JWT claims issued by this service.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// Register creates a new account and issues tokens.
func (s *UserService) Register(ctx context.Context, cmd RegisterCommand) (*AuthResponse, error) {
	s.logger.Info("Registering user", zap.String("email", cmd.Email))

	existing, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if existing != nil {
		return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	entity, err := user.NewUser(cmd.Email, cmd.Name, string(hash))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.userRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", entity.ID().String()),
		zap.String("email", entity.Email()),
	)
	return s.authResponse(entity)
}

// Login authenticates a user against the stored bcrypt hash.
func (s *UserService) Login(ctx context.Context, cmd LoginCommand) (*AuthResponse, error) {
	entity, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if entity == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.PasswordHash()), []byte(cmd.Password)); err != nil {
		s.logger.Warn("Invalid password attempt", zap.String("email", cmd.Email))
		return nil, errors.NewInvalidCredentialsError()
	}

	s.logger.Info("User logged in", zap.String("user_id", entity.ID().String()))
	return s.authResponse(entity)
}

// GetByID retrieves a user profile.
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if entity == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// SetUnitSystem updates the preferred measurement system. Every display
// formatting call site reads this preference.
func (s *UserService) SetUnitSystem(ctx context.Context, userID uuid.UUID, system string) (*UserDTO, error) {
	var sys measurement.System
	switch system {
	case string(measurement.SystemMetric):
		sys = measurement.SystemMetric
	case string(measurement.SystemUS):
		sys = measurement.SystemUS
	default:
		return nil, errors.NewValidationError("unit system must be metric or us")
	}

	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if entity == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}

	entity.SetUnitSystem(sys)
	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update user", err)
	}

	s.logger.Info("Unit system updated",
		zap.String("user_id", userID.String()),
		zap.String("system", string(sys)),
	)
	dto := entityToDTO(entity)
	return &dto, nil
}

// ValidateToken validates a JWT access token and returns its claims.
func (s *UserService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewUnauthorizedError("invalid token claims")
	}
	return claims, nil
}

func (s *UserService) authResponse(entity *user.User) (*AuthResponse, error) {
	access, err := s.signToken(entity, accessTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}
	refresh, err := s.signToken(entity, refreshTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &AuthResponse{
		User:         entityToDTO(entity),
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(accessTokenTTL.Seconds()),
	}, nil
}

func (s *UserService) signToken(entity *user.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: entity.ID(),
		Email:  entity.Email(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   entity.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func entityToDTO(entity *user.User) UserDTO {
	return UserDTO{
		ID:         entity.ID(),
		Email:      entity.Email(),
		Name:       entity.Name(),
		UnitSystem: string(entity.UnitSystem()),
		CreatedAt:  entity.CreatedAt(),
	}
}
