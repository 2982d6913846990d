package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/testutil"
	pkgjwt "github.com/jmcalvo/puntoventa-api/pkg/jwt"
)

const testSecret = "secret-de-prueba"

func newFixture(t *testing.T, password string) (*testutil.Store, *UseCase) {
	t.Helper()
	store := testutil.NewStore()
	store.SeedBranch("suc-1")
	user := store.SeedUser("user-1", "suc-1")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user.PasswordHash = string(hash)

	uc := NewUseCase(store.Repos().Users, JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "puntoventa-test",
	})
	return store, uc
}

func TestLoginExitoso(t *testing.T) {
	_, uc := newFixture(t, "clave-segura")

	out, err := uc.Login(dto.LoginRequest{Username: "user-user-1", Password: "clave-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "user-1", out.User.ID)
	assert.Equal(t, "suc-1", out.User.BranchID)

	userID, branchID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "suc-1", branchID)
	assert.Equal(t, out.User.Role, role)
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	_, uc := newFixture(t, "clave-segura")

	_, err := uc.Login(dto.LoginRequest{Username: "user-user-1", Password: "otra-clave"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	_, uc := newFixture(t, "clave-segura")

	// Mismo error que una contraseña incorrecta: no filtra qué usuarios existen.
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "clave-segura"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
