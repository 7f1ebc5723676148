package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Recargas-api/internal/application/auth"
	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de registro y login con repos en memoria.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	byEmail    map[string]*entity.User
	byID       map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: map[string]*entity.User{},
		byEmail:    map[string]*entity.User{},
		byID:       map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.byUsername[u.Username] = u
	r.byID[u.ID] = u
	if u.Email != "" {
		r.byEmail[u.Email] = u
	}
	return nil
}

// Como el repo real: miss devuelve nil sin error.
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}
func (r *fakeUserRepo) UpdateStatus(string, string) error     { return nil }
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Count() (int, error)                   { return len(r.byUsername), nil }

type fakeBalanceRepo struct {
	upserts []*entity.Balance
}

func (r *fakeBalanceRepo) Get(string) (*entity.Balance, error)          { return nil, nil }
func (r *fakeBalanceRepo) GetForUpdate(string) (*entity.Balance, error) { return nil, nil }
func (r *fakeBalanceRepo) Upsert(b *entity.Balance) error {
	r.upserts = append(r.upserts, b)
	return nil
}
func (r *fakeBalanceRepo) List() ([]*entity.Balance, error) { return nil, nil }

type fakeRunner struct {
	users    *fakeUserRepo
	balances *fakeBalanceRepo
}

func (r *fakeRunner) RunSignup(_ context.Context, fn func(
	repository.UserRepository,
	repository.BalanceRepository,
) error) error {
	return fn(r.users, r.balances)
}

func buildAuth() (*auth.AuthUseCase, *fakeUserRepo, *fakeBalanceRepo) {
	users := newFakeUserRepo()
	balances := &fakeBalanceRepo{}
	runner := &fakeRunner{users: users, balances: balances}
	uc := auth.NewAuthUseCase(users, runner, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "recargas-api-test",
	})
	return uc, users, balances
}

func signupReq() dto.SignupRequest {
	return dto.SignupRequest{
		FirstName:       "Nana",
		Username:        "NanaStore",
		Email:           "Nana@Example.com",
		Password:        "super-secreto-1",
		ConfirmPassword: "super-secreto-1",
	}
}

func TestSignup_CreaUsuarioYWalletEnCero(t *testing.T) {
	uc, users, balances := buildAuth()

	resp, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	assert.Equal(t, "nanastore", resp.Username, "El username se normaliza a minúsculas")
	assert.Equal(t, "nana@example.com", resp.Email)
	assert.Equal(t, entity.RoleCustomer, resp.Role, "Todo registro entra como customer")
	assert.Equal(t, entity.UserStatusActive, resp.Status)

	// El hash nunca sale por la API y el password no se guarda plano.
	stored := users.byUsername["nanastore"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreto-1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("super-secreto-1")))

	// Wallet en cero creado en la misma transacción del alta.
	require.Len(t, balances.upserts, 1)
	assert.True(t, balances.upserts[0].Amount.IsZero())
	assert.Equal(t, "GHS", balances.upserts[0].Currency)
	assert.Equal(t, stored.ID, balances.upserts[0].UserID)
}

func TestSignup_PasswordsNoCoinciden(t *testing.T) {
	uc, _, _ := buildAuth()

	req := signupReq()
	req.ConfirmPassword = "otro-password-123"
	_, err := uc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignup_UsernameTomado(t *testing.T) {
	uc, _, _ := buildAuth()

	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	// Mismo username con otra capitalización: sigue siendo duplicado.
	req := signupReq()
	req.Email = ""
	req.Username = "NANASTORE"
	_, err = uc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestSignup_EmailTomado(t *testing.T) {
	uc, _, _ := buildAuth()

	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	req := signupReq()
	req.Username = "otrostore"
	_, err = uc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignup_PasswordCorto(t *testing.T) {
	uc, _, _ := buildAuth()

	req := signupReq()
	req.Password = "corto"
	req.ConfirmPassword = "corto"
	_, err := uc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _, _ := buildAuth()
	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "nanastore",
		Password: "super-secreto-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "nanastore", resp.User.Username)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := buildAuth()
	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Username: "nanastore",
		Password: "password-equivocado",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := buildAuth()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "fantasma",
		Password: "lo-que-sea-123",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// TestLogin_CuentaSuspendida: credenciales correctas pero cuenta no activa.
func TestLogin_CuentaSuspendida(t *testing.T) {
	uc, users, _ := buildAuth()
	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	users.byUsername["nanastore"].Status = entity.UserStatusSuspended

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Username: "nanastore",
		Password: "super-secreto-1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de cambio de password
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_ReemplazaElHash(t *testing.T) {
	uc, users, _ := buildAuth()
	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)
	userID := users.byUsername["nanastore"].ID

	err = uc.ChangePassword(context.Background(), userID, dto.ChangePasswordRequest{
		CurrentPassword: "super-secreto-1",
		NewPassword:     "nuevo-secreto-2",
		ConfirmPassword: "nuevo-secreto-2",
	})
	require.NoError(t, err)

	stored := users.byID[userID]
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("nuevo-secreto-2")))
	assert.Error(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("super-secreto-1")),
		"El password anterior deja de servir")
}

func TestChangePassword_PasswordActualIncorrecto(t *testing.T) {
	uc, users, _ := buildAuth()
	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)
	userID := users.byUsername["nanastore"].ID
	hashAntes := users.byID[userID].PasswordHash

	err = uc.ChangePassword(context.Background(), userID, dto.ChangePasswordRequest{
		CurrentPassword: "password-equivocado",
		NewPassword:     "nuevo-secreto-2",
		ConfirmPassword: "nuevo-secreto-2",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, hashAntes, users.byID[userID].PasswordHash,
		"Un intento rechazado no toca el hash")
}

func TestChangePassword_ConfirmacionNoCoincide(t *testing.T) {
	uc, users, _ := buildAuth()
	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	err = uc.ChangePassword(context.Background(), users.byUsername["nanastore"].ID, dto.ChangePasswordRequest{
		CurrentPassword: "super-secreto-1",
		NewPassword:     "nuevo-secreto-2",
		ConfirmPassword: "otro-distinto-3",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword_NuevoPasswordCorto(t *testing.T) {
	uc, users, _ := buildAuth()
	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	err = uc.ChangePassword(context.Background(), users.byUsername["nanastore"].ID, dto.ChangePasswordRequest{
		CurrentPassword: "super-secreto-1",
		NewPassword:     "corto",
		ConfirmPassword: "corto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword_UsuarioInexistente(t *testing.T) {
	uc, _, _ := buildAuth()

	err := uc.ChangePassword(context.Background(), "no-existe", dto.ChangePasswordRequest{
		CurrentPassword: "super-secreto-1",
		NewPassword:     "nuevo-secreto-2",
		ConfirmPassword: "nuevo-secreto-2",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
