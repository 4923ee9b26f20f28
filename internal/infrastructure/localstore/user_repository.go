package localstore

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
	"github.com/skarki/stayhub-api/pkg/logger"
)

// UserRepository implementa repository.UserRepository sobre el Store.
type UserRepository struct {
	store *Store
	log   *logger.Logger
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store *Store, log *logger.Logger) *UserRepository {
	return &UserRepository{store: store, log: log}
}

func (r *UserRepository) decode(raw json.RawMessage, ok bool) []*entity.User {
	if !ok {
		return sampleUsers()
	}
	var list []*entity.User
	if err := json.Unmarshal(raw, &list); err != nil {
		r.log.Warn().Err(err).Str("key", keyUsers).Msg("colección de usuarios corrupta, usando datos de muestra")
		return sampleUsers()
	}
	return list
}

// GetAll devuelve todos los usuarios (datos de muestra si no hay nada persistido).
func (r *UserRepository) GetAll() ([]*entity.User, error) {
	raw, ok := r.store.Get(keyUsers)
	return r.decode(raw, ok), nil
}

// SaveAll reescribe la colección completa.
func (r *UserRepository) SaveAll(users []*entity.User) error {
	return r.store.Set(keyUsers, users)
}

// Add asigna ID y CreatedAt, agrega al final y persiste.
func (r *UserRepository) Add(user *entity.User) (*entity.User, error) {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()

	err := r.store.Mutate(keyUsers, func(raw json.RawMessage, ok bool) (any, error) {
		return append(r.decode(raw, ok), user), nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update funde el patch sobre el usuario con ese id y persiste.
// Si el id no existe devuelve domain.ErrUserNotFound y no escribe nada.
func (r *UserRepository) Update(id string, updates repository.UserPatch) (*entity.User, error) {
	var merged *entity.User
	err := r.store.Mutate(keyUsers, func(raw json.RawMessage, ok bool) (any, error) {
		list := r.decode(raw, ok)
		for _, u := range list {
			if u.ID != id {
				continue
			}
			if updates.Name != nil {
				u.Name = *updates.Name
			}
			if updates.Email != nil {
				u.Email = *updates.Email
			}
			if updates.Profile != nil {
				u.Profile = *updates.Profile
			}
			merged = u
			return list, nil
		}
		return nil, domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// GetByID busca un usuario por id.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	list, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByEmail devuelve la primera coincidencia por email (clave de facto del
// login; la unicidad no está garantizada). nil, nil si no hay coincidencia.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	list, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}
