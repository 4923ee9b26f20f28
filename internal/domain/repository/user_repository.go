package repository

import "github.com/skarki/stayhub-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los usuarios nunca se borran en esta demo.
type UserRepository interface {
	GetAll() ([]*entity.User, error)
	SaveAll(users []*entity.User) error
	// Add asigna ID y CreatedAt, agrega al final y persiste.
	Add(user *entity.User) (*entity.User, error)
	// Update funde los campos de updates sobre el usuario con ese id.
	// Devuelve domain.ErrUserNotFound si no existe.
	Update(id string, updates UserPatch) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	// FindByEmail: el email es la clave de facto del login (unicidad no garantizada;
	// devuelve la primera coincidencia en orden de inserción).
	FindByEmail(email string) (*entity.User, error)
}

// UserPatch campos parciales para Update (nil = sin cambio).
type UserPatch struct {
	Name    *string
	Email   *string
	Profile *entity.Profile
}
