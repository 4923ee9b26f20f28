package localstore

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
	"github.com/skarki/stayhub-api/pkg/logger"
)

// HotelRepository implementa repository.HotelRepository sobre el Store.
type HotelRepository struct {
	store *Store
	log   *logger.Logger
}

// NewHotelRepository construye el repositorio.
func NewHotelRepository(store *Store, log *logger.Logger) *HotelRepository {
	return &HotelRepository{store: store, log: log}
}

func (r *HotelRepository) decode(raw json.RawMessage, ok bool) []*entity.Hotel {
	if !ok {
		return sampleHotels()
	}
	var list []*entity.Hotel
	if err := json.Unmarshal(raw, &list); err != nil {
		r.log.Warn().Err(err).Str("key", keyHotels).Msg("colección de hoteles corrupta, usando datos de muestra")
		return sampleHotels()
	}
	return list
}

// GetAll devuelve todos los hoteles (datos de muestra si no hay nada persistido).
func (r *HotelRepository) GetAll() ([]*entity.Hotel, error) {
	raw, ok := r.store.Get(keyHotels)
	return r.decode(raw, ok), nil
}

// SaveAll reescribe la colección completa.
func (r *HotelRepository) SaveAll(hotels []*entity.Hotel) error {
	return r.store.Set(keyHotels, hotels)
}

// Add asigna ID y CreatedAt, agrega al final y persiste.
func (r *HotelRepository) Add(hotel *entity.Hotel) (*entity.Hotel, error) {
	hotel.ID = uuid.New().String()
	hotel.CreatedAt = time.Now()

	err := r.store.Mutate(keyHotels, func(raw json.RawMessage, ok bool) (any, error) {
		return append(r.decode(raw, ok), hotel), nil
	})
	if err != nil {
		return nil, err
	}
	return hotel, nil
}

// Update funde el patch sobre el hotel con ese id y persiste.
// Si el id no existe devuelve domain.ErrHotelNotFound y no escribe nada.
func (r *HotelRepository) Update(id string, updates repository.HotelPatch) (*entity.Hotel, error) {
	var merged *entity.Hotel
	err := r.store.Mutate(keyHotels, func(raw json.RawMessage, ok bool) (any, error) {
		list := r.decode(raw, ok)
		for _, h := range list {
			if h.ID != id {
				continue
			}
			if updates.Name != nil {
				h.Name = *updates.Name
			}
			if updates.Location != nil {
				h.Location = *updates.Location
			}
			if updates.Rooms != nil {
				h.Rooms = *updates.Rooms
			}
			if updates.Rating != nil {
				h.Rating = *updates.Rating
			}
			if updates.Status != nil {
				h.Status = *updates.Status
			}
			if updates.Description != nil {
				h.Description = *updates.Description
			}
			merged = h
			return list, nil
		}
		return nil, domain.ErrHotelNotFound
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// GetByID busca un hotel por id.
func (r *HotelRepository) GetByID(id string) (*entity.Hotel, error) {
	list, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for _, h := range list {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, domain.ErrHotelNotFound
}

// Delete elimina por id y persiste. Borrar un id inexistente no es error:
// la operación es idempotente (contrato heredado de la fuente; solo se
// deja un rastro en el log para diagnóstico).
func (r *HotelRepository) Delete(id string) error {
	return r.store.Mutate(keyHotels, func(raw json.RawMessage, ok bool) (any, error) {
		list := r.decode(raw, ok)
		out := make([]*entity.Hotel, 0, len(list))
		for _, h := range list {
			if h.ID != id {
				out = append(out, h)
			}
		}
		if len(out) == len(list) {
			r.log.Debug().Str("hotel_id", id).Msg("delete de hotel inexistente (no-op)")
		}
		return out, nil
	})
}
