package localstore

import (
	"encoding/json"

	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/pkg/logger"
)

// SessionRepository implementa repository.SessionRepository sobre el Store.
// Guarda una COPIA del usuario bajo current_user: no es un enlace vivo a la
// colección de usuarios, por lo que ediciones de perfil requieren re-sincronizar.
type SessionRepository struct {
	store *Store
	log   *logger.Logger
}

// NewSessionRepository construye el repositorio.
func NewSessionRepository(store *Store, log *logger.Logger) *SessionRepository {
	return &SessionRepository{store: store, log: log}
}

// GetCurrentUser devuelve el usuario de la sesión, o nil, nil si no hay sesión.
// Una copia persistida ilegible equivale a no tener sesión (se loguea).
func (r *SessionRepository) GetCurrentUser() (*entity.User, error) {
	raw, ok := r.store.Get(keyCurrentUser)
	if !ok {
		return nil, nil
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		r.log.Warn().Err(err).Str("key", keyCurrentUser).Msg("sesión persistida corrupta, se descarta")
		return nil, nil
	}
	return &u, nil
}

// SetCurrentUser persiste la copia del usuario; con nil limpia el puntero.
func (r *SessionRepository) SetCurrentUser(user *entity.User) error {
	if user == nil {
		return r.store.Delete(keyCurrentUser)
	}
	return r.store.Set(keyCurrentUser, user)
}
