package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Planta-api/internal/application/auth"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/pkg/jwt"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

type memUserRepo struct {
	users   map[string]*entity.User
	touched []string
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *memUserRepo) TouchLastLogin(_ context.Context, id string) error {
	r.touched = append(r.touched, id)
	return nil
}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3gura"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &memUserRepo{users: map[string]*entity.User{
		"ana":      {ID: "u1", Username: "ana", PasswordHash: string(hash), Role: entity.RoleInventoryStaff, Name: "Ana", IsActive: true},
		"inactivo": {ID: "u2", Username: "inactivo", PasswordHash: string(hash), Role: entity.RoleSalesStaff, IsActive: false},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "planta-api"}, logger.Nop())
	return uc, repo
}

func TestLogin_OK(t *testing.T) {
	uc, repo := newAuth(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "s3gura"})
	require.NoError(t, err)
	assert.Equal(t, "ana", res.User.Username)
	assert.Equal(t, []string{"u1"}, repo.touched)

	claims, err := jwt.Parse("test-secret", res.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "inventory_staff", claims.Role)
	assert.Equal(t, "u1", claims.UserID)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "s3gura"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "inactivo", Password: "s3gura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
