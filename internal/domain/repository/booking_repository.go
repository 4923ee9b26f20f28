package repository

import "github.com/skarki/stayhub-api/internal/domain/entity"

// BookingRepository define el puerto de persistencia para Booking (DIP).
// Las reservas nunca se borran: el ciclo de vida es solo cambio de estado.
type BookingRepository interface {
	// GetAll devuelve todas las reservas. Si el almacén está vacío o corrupto
	// devuelve los datos de muestra (comportamiento del shim original).
	GetAll() ([]*entity.Booking, error)
	SaveAll(bookings []*entity.Booking) error
	// Add asigna ID y CreatedAt, antepone la reserva y persiste.
	Add(booking *entity.Booking) (*entity.Booking, error)
	// Update funde los campos no-cero de updates sobre la reserva con ese id.
	// Devuelve domain.ErrBookingNotFound si no existe; la colección no cambia.
	Update(id string, updates BookingPatch) (*entity.Booking, error)
	GetByID(id string) (*entity.Booking, error)
	ListByGuestEmail(email string) ([]*entity.Booking, error)
}

// BookingPatch campos parciales para Update (nil = sin cambio).
type BookingPatch struct {
	Status        *string
	TransactionID *string
	SpecialReqs   *string
}
