package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/application/usecase"
	"github.com/skarki/stayhub-api/internal/domain/repository"
	"github.com/skarki/stayhub-api/internal/infrastructure/localstore"
	"github.com/skarki/stayhub-api/pkg/logger"
)

func newUserUC(t *testing.T) (*usecase.UserUseCase, repository.UserRepository, repository.SessionRepository) {
	t.Helper()
	store := localstore.New(filepath.Join(t.TempDir(), "stayhub.json"), logger.Nop())
	userRepo := localstore.NewUserRepository(store, logger.Nop())
	sessionRepo := localstore.NewSessionRepository(store, logger.Nop())
	return usecase.NewUserUseCase(userRepo, sessionRepo), userRepo, sessionRepo
}

// La edición de perfil funde solo los campos presentes, persiste el resultado
// y re-sincroniza la copia de sesión (el puntero guarda una copia, no un
// enlace vivo).
func TestUpdateProfile_PersisteYResincronizaLaSesion(t *testing.T) {
	uc, userRepo, sessionRepo := newUserUC(t)

	john, err := userRepo.GetByID("1")
	require.NoError(t, err)
	require.NoError(t, sessionRepo.SetCurrentUser(john))

	out, err := uc.UpdateProfile("1", dto.UpdateProfileRequest{
		Phone:   "+977-9700000000",
		Address: "Lalitpur, Nepal",
	})
	require.NoError(t, err)

	assert.Equal(t, "John", out.Profile.FirstName, "los campos ausentes se conservan")
	assert.Equal(t, "+977-9700000000", out.Profile.Phone)
	assert.Equal(t, "Lalitpur, Nepal", out.Profile.Address)

	persisted, err := userRepo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "+977-9700000000", persisted.Profile.Phone, "el perfil fundido quedó persistido")

	current, err := sessionRepo.GetCurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current, "la sesión sigue abierta")
	assert.Equal(t, "+977-9700000000", current.Profile.Phone, "la copia de sesión se re-sincronizó")
	assert.Equal(t, "Lalitpur, Nepal", current.Profile.Address)
}

// Editar a otro usuario no toca la copia de sesión: solo se re-sincroniza
// cuando el editado es el usuario actual.
func TestUpdateProfile_NoTocaLaSesionDeOtroUsuario(t *testing.T) {
	uc, userRepo, sessionRepo := newUserUC(t)

	jane, err := userRepo.GetByID("2")
	require.NoError(t, err)
	require.NoError(t, sessionRepo.SetCurrentUser(jane))

	_, err = uc.UpdateProfile("1", dto.UpdateProfileRequest{Phone: "+977-9700000000"})
	require.NoError(t, err)

	current, err := sessionRepo.GetCurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "2", current.ID)
	assert.Equal(t, "+977-9851234567", current.Profile.Phone, "la copia de Jane quedó intacta")
}
