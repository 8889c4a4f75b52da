package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partes-app/partes-api/internal/application/auth"
	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	pkgjwt "github.com/partes-app/partes-api/pkg/jwt"
)

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func testUseCase() (*auth.UseCase, *memUserRepo) {
	repo := &memUserRepo{}
	uc := auth.New(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "partes-api-test",
	})
	return uc, repo
}

func TestRegister_CreaUsuarioActivo(t *testing.T) {
	uc, repo := testUseCase()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@partes.app",
		Password: "secreta-123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@partes.app", out.Email)
	assert.Equal(t, "ana@partes.app", out.Name, "sin nombre, se usa el email")
	assert.Equal(t, "active", out.Status)

	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "secreta-123", repo.users[0].PasswordHash,
		"el password nunca se guarda en claro")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := testUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@partes.app", Password: "secreta-123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@partes.app", Password: "otra-clave-9"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_DevuelveTokenParseable(t *testing.T) {
	uc, _ := testUseCase()
	registered, err := uc.Register(dto.RegisterRequest{Email: "ana@partes.app", Password: "secreta-123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@partes.app", Password: "secreta-123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, email, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "ana@partes.app", email)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@partes.app", Password: "secreta-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@partes.app", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@partes.app", Password: "secreta-123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, repo := testUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@partes.app", Password: "secreta-123"})
	require.NoError(t, err)
	repo.users[0].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@partes.app", Password: "secreta-123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
