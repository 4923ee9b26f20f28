package localstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
	"github.com/skarki/stayhub-api/pkg/logger"
)

// BookingRepository implementa repository.BookingRepository sobre el Store.
type BookingRepository struct {
	store *Store
	log   *logger.Logger
}

// NewBookingRepository construye el repositorio.
func NewBookingRepository(store *Store, log *logger.Logger) *BookingRepository {
	return &BookingRepository{store: store, log: log}
}

// newBookingID genera la referencia de reserva: HTB + últimos 6 dígitos del
// reloj en milisegundos (formato heredado de la fuente).
func newBookingID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return "HTB" + ms[len(ms)-6:]
}

func (r *BookingRepository) decode(raw json.RawMessage, ok bool) []*entity.Booking {
	if !ok {
		return sampleBookings()
	}
	var list []*entity.Booking
	if err := json.Unmarshal(raw, &list); err != nil {
		r.log.Warn().Err(err).Str("key", keyBookings).Msg("colección de reservas corrupta, usando datos de muestra")
		return sampleBookings()
	}
	return list
}

// GetAll devuelve todas las reservas (datos de muestra si no hay nada persistido).
func (r *BookingRepository) GetAll() ([]*entity.Booking, error) {
	raw, ok := r.store.Get(keyBookings)
	return r.decode(raw, ok), nil
}

// SaveAll reescribe la colección completa.
func (r *BookingRepository) SaveAll(bookings []*entity.Booking) error {
	return r.store.Set(keyBookings, bookings)
}

// Add asigna ID y CreatedAt, antepone la reserva (las más recientes primero,
// como la fuente) y persiste. Devuelve el registro almacenado.
func (r *BookingRepository) Add(booking *entity.Booking) (*entity.Booking, error) {
	now := time.Now()
	booking.ID = newBookingID(now)
	booking.CreatedAt = now

	err := r.store.Mutate(keyBookings, func(raw json.RawMessage, ok bool) (any, error) {
		list := r.decode(raw, ok)
		return append([]*entity.Booking{booking}, list...), nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Update funde el patch sobre la reserva con ese id y persiste.
// Si el id no existe devuelve domain.ErrBookingNotFound y no escribe nada.
func (r *BookingRepository) Update(id string, updates repository.BookingPatch) (*entity.Booking, error) {
	var merged *entity.Booking
	err := r.store.Mutate(keyBookings, func(raw json.RawMessage, ok bool) (any, error) {
		list := r.decode(raw, ok)
		for _, b := range list {
			if b.ID != id {
				continue
			}
			if updates.Status != nil {
				b.Status = *updates.Status
			}
			if updates.TransactionID != nil {
				b.TransactionID = *updates.TransactionID
			}
			if updates.SpecialReqs != nil {
				b.SpecialReqs = *updates.SpecialReqs
			}
			merged = b
			return list, nil
		}
		return nil, domain.ErrBookingNotFound
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// GetByID busca una reserva por id.
func (r *BookingRepository) GetByID(id string) (*entity.Booking, error) {
	list, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

// ListByGuestEmail filtra por email del huésped preservando el orden.
func (r *BookingRepository) ListByGuestEmail(email string) ([]*entity.Booking, error) {
	list, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Booking, 0, len(list))
	for _, b := range list {
		if strings.EqualFold(b.GuestEmail, email) {
			out = append(out, b)
		}
	}
	return out, nil
}
