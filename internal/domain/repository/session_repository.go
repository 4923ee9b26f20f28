package repository

import "github.com/skarki/stayhub-api/internal/domain/entity"

// SessionRepository guarda el puntero al usuario "actual" de la demo.
// Es una referencia débil: se almacena una COPIA del usuario, no un enlace vivo;
// una edición de perfil no se refleja hasta volver a llamar SetCurrentUser.
// A lo sumo hay una sesión a la vez.
type SessionRepository interface {
	// GetCurrentUser devuelve nil, nil si no hay sesión (o si la copia
	// persistida está corrupta: una sesión ilegible equivale a no tener sesión).
	GetCurrentUser() (*entity.User, error)
	// SetCurrentUser con nil limpia el puntero.
	SetCurrentUser(user *entity.User) error
}
