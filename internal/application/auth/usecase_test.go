package auth_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarki/stayhub-api/internal/application/auth"
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/infrastructure/localstore"
	"github.com/skarki/stayhub-api/pkg/logger"
)

func newAuthUC(t *testing.T, cfg auth.Config) *auth.AuthUseCase {
	t.Helper()
	store := localstore.New(filepath.Join(t.TempDir(), "stayhub.json"), logger.Nop())
	userRepo := localstore.NewUserRepository(store, logger.Nop())
	sessionRepo := localstore.NewSessionRepository(store, logger.Nop())
	if cfg.JWT.Secret == "" {
		cfg.JWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stayhub-test"}
	}
	return auth.NewAuthUseCase(userRepo, sessionRepo, cfg, logger.Nop())
}

// Login con un email desconocido crea el usuario sobre la marcha, con el
// nombre tomado de la parte local del email.
func TestLogin_CreaUsuarioDesdeEmail(t *testing.T) {
	uc := newAuthUC(t, auth.Config{})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "asha@email.com", Password: "cualquiera"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.Token, "el login emite un token de sesión")
	assert.Equal(t, "asha", out.User.Name, "el nombre sale de la parte local del email")
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.NotEmpty(t, out.User.ID)

	// El usuario queda como sesión actual.
	current, err := uc.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "asha@email.com", current.Email)
}

// El segundo login con el mismo email reutiliza el usuario ya creado.
func TestLogin_ReutilizaUsuarioExistente(t *testing.T) {
	uc := newAuthUC(t, auth.Config{})

	primero, err := uc.Login(context.Background(), dto.LoginRequest{Email: "asha@email.com", Password: "x"})
	require.NoError(t, err)
	segundo, err := uc.Login(context.Background(), dto.LoginRequest{Email: "asha@email.com", Password: "otra"})
	require.NoError(t, err)

	assert.Equal(t, primero.User.ID, segundo.User.ID, "mismo email, mismo usuario")
}

func TestLogin_EmailEnListaAdminRecibeRolAdmin(t *testing.T) {
	uc := newAuthUC(t, auth.Config{AdminEmails: []string{"admin@stayhub.com"}})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "Admin@StayHub.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role, "la comparación de emails admin es case-insensitive")
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := newAuthUC(t, auth.Config{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un contexto cancelado durante el retardo simulado aborta el login sin
// crear usuario ni sesión.
func TestLogin_ContextoCanceladoAbortaElRetardo(t *testing.T) {
	uc := newAuthUC(t, auth.Config{Delay: 5 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := uc.Login(ctx, dto.LoginRequest{Email: "asha@email.com", Password: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "no debe esperar el retardo completo")

	current, err := uc.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, current, "el login abortado no deja sesión")
}

// Signup siempre crea un usuario nuevo, incluso con un email ya registrado.
func TestSignup_NoChequeaDuplicados(t *testing.T) {
	uc := newAuthUC(t, auth.Config{})

	primero, err := uc.Signup(context.Background(), dto.SignupRequest{Name: "Asha Rai", Email: "asha@email.com", Password: "x"})
	require.NoError(t, err)
	segundo, err := uc.Signup(context.Background(), dto.SignupRequest{Name: "Asha Rai", Email: "asha@email.com", Password: "x"})
	require.NoError(t, err)

	assert.NotEqual(t, primero.User.ID, segundo.User.ID, "cada signup crea un registro nuevo")
	assert.Equal(t, "Asha", primero.User.Profile.FirstName)
	assert.Equal(t, "Rai", primero.User.Profile.LastName)
}

func TestLogout_LimpiaLaSesion(t *testing.T) {
	uc := newAuthUC(t, auth.Config{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "asha@email.com", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout())

	current, err := uc.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, current)
}
