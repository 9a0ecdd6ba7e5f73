package auth

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase() *AuthUseCase {
	store := memory.NewStore()
	uc := NewAuthUseCase(store.TxRunner(), store.Repos(), JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "backoffice-test"}, zerolog.Nop())
	uc.cost = bcrypt.MinCost
	return uc
}

func register(t *testing.T, uc *AuthUseCase) *dto.LoginResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		StoreName: "Tienda Centro",
		Name:      "Ana Gómez",
		Email:     "Ana@Tienda.co",
		Password:  "secreta123",
	})
	require.NoError(t, err)
	return out
}

func TestRegister_CreaTiendaYAdmin(t *testing.T) {
	uc := newUseCase()
	out := register(t, uc)

	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Equal(t, "ana@tienda.co", out.User.Email)
	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.StoreID, claims.StoreID)
	assert.Equal(t, out.User.ID, claims.UserID)

	store, err := uc.repos.Stores().GetByID(context.Background(), out.User.StoreID)
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "Tienda Centro", store.Name)
}

func TestRegister_EmailRepetido(t *testing.T) {
	uc := newUseCase()
	register(t, uc)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		StoreName: "Otra", Name: "Otra Ana", Email: "ana@tienda.co", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc := newUseCase()
	reg := register(t, uc)
	ctx := context.Background()

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@tienda.co", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@tienda.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@tienda.co", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "no-es-email", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_YMe(t *testing.T) {
	uc := newUseCase()
	reg := register(t, uc)
	ctx := context.Background()

	u, err := uc.CreateUser(ctx, reg.User.StoreID, dto.CreateUserRequest{
		Name: "Luis Bodega", Email: "luis@tienda.co", Password: "bodega123", Role: entity.RoleBodeguero,
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.StoreID, u.StoreID)

	_, err = uc.CreateUser(ctx, reg.User.StoreID, dto.CreateUserRequest{
		Name: "X", Email: "luis@tienda.co", Password: "bodega123", Role: entity.RoleVendedor,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.CreateUser(ctx, reg.User.StoreID, dto.CreateUserRequest{
		Name: "X", Email: "x@tienda.co", Password: "bodega123", Role: "root",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	me, err := uc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBodeguero, me.Role)

	_, err = uc.Me(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
