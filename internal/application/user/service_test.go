package user

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/user"
	"github.com/platewise/v2/pkg/errors"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*user.User
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.byID[u.ID()] = u
	f.byEmail[u.Email()] = u
	return nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	f.byID[u.ID()] = u
	return nil
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.byEmail[strings.ToLower(email)], nil
}
func (f *fakeUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "test-secret", zap.NewNop())

	resp, err := svc.Register(context.Background(), RegisterCommand{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "us", resp.User.UnitSystem, "new accounts default to US units")

	login, err := svc.Login(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "test-secret", zap.NewNop())

	_, err := svc.Register(context.Background(), RegisterCommand{
		Email: "bob@example.com", Name: "Bob", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterCommand{
		Email: "bob@example.com", Name: "Bob again", Password: "hunter2hunter2",
	})
	assert.True(t, errors.Is(err, errors.CodeEmailAlreadyExists))
}

func TestSetUnitSystem(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "test-secret", zap.NewNop())

	resp, err := svc.Register(context.Background(), RegisterCommand{
		Email: "carol@example.com", Name: "Carol", Password: "a longer password",
	})
	require.NoError(t, err)

	dto, err := svc.SetUnitSystem(context.Background(), resp.User.ID, "metric")
	require.NoError(t, err)
	assert.Equal(t, "metric", dto.UnitSystem)

	_, err = svc.SetUnitSystem(context.Background(), resp.User.ID, "imperial")
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestValidateToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "test-secret", zap.NewNop())

	resp, err := svc.Register(context.Background(), RegisterCommand{
		Email: "dave@example.com", Name: "Dave", Password: "a longer password",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	_, err = svc.ValidateToken("not-a-token")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))

	other := NewUserService(repo, "different-secret", zap.NewNop())
	_, err = other.ValidateToken(resp.AccessToken)
	assert.Error(t, err, "token signed with another secret must fail")
}
