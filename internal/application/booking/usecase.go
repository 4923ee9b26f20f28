// Package booking implementa el flujo de reserva: cotización, creación,
// listado por huésped, cancelación y cambio de estado (admin).
package booking

import (
	"strings"
	"time"

	"github.com/skarki/stayhub-api/internal/application/catalog"
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/pricing"
	"github.com/skarki/stayhub-api/internal/domain/repository"
	"github.com/skarki/stayhub-api/pkg/logger"
)

// BookingUseCase casos de uso del flujo de reserva.
type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	hotelRepo   repository.HotelRepository
	log         *logger.Logger
}

// NewBookingUseCase construye el caso de uso.
func NewBookingUseCase(bookingRepo repository.BookingRepository, hotelRepo repository.HotelRepository, log *logger.Logger) *BookingUseCase {
	return &BookingUseCase{bookingRepo: bookingRepo, hotelRepo: hotelRepo, log: log}
}

// Quote cotiza una estadía sin persistir nada. Fechas ausentes cotizan 1 noche.
func (uc *BookingUseCase) Quote(in dto.QuoteRequest) *dto.QuoteResponse {
	rt := catalog.RoomTypeFor(in.RoomType)

	var checkIn, checkOut time.Time
	if in.CheckIn != nil {
		checkIn = *in.CheckIn
	}
	if in.CheckOut != nil {
		checkOut = *in.CheckOut
	}

	q := pricing.Calculate(rt.Price, in.Rooms, checkIn, checkOut)
	return toQuoteResponse(rt, q)
}

// Create valida el invariante de fechas (la calculadora no lo hace), cotiza en
// el servidor y persiste la reserva con estado pending. El pago posterior la
// pasa a confirmed.
func (uc *BookingUseCase) Create(in dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, domain.ErrInvalidDates
	}

	hotelName, location, image, rating, err := uc.resolveHotel(in.HotelID)
	if err != nil {
		return nil, err
	}

	rt := catalog.RoomTypeFor(in.RoomType)
	q := pricing.Calculate(rt.Price, in.Rooms, in.CheckIn, in.CheckOut)

	stored, err := uc.bookingRepo.Add(&entity.Booking{
		HotelID:     in.HotelID,
		HotelName:   hotelName,
		Location:    location,
		RoomType:    rt.Name,
		CheckIn:     in.CheckIn,
		CheckOut:    in.CheckOut,
		Guests:      in.Guests,
		Rooms:       in.Rooms,
		TotalAmount: q.Total,
		Status:      entity.BookingPending,
		GuestName:   strings.TrimSpace(in.FirstName + " " + in.LastName),
		GuestEmail:  in.Email,
		GuestPhone:  in.Phone,
		SpecialReqs: in.SpecialRequests,
		Image:       image,
		Rating:      rating,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("booking_id", stored.ID).Str("hotel", hotelName).Msg("reserva creada")

	return &dto.CreateBookingResponse{
		Booking: ToResponse(stored),
		Quote:   *toQuoteResponse(rt, q),
	}, nil
}

// resolveHotel busca el hotel en la colección admin y, si no está, en el
// catálogo estático de presentación (los ids de la demo viven en ambos lados).
func (uc *BookingUseCase) resolveHotel(id string) (name, location, image string, rating float64, err error) {
	if h, herr := uc.hotelRepo.GetByID(id); herr == nil {
		return h.Name, h.Location, "", h.Rating, nil
	}
	if l := catalog.ListingByID(id); l != nil {
		return l.Name, l.Location, l.Image, l.Rating, nil
	}
	return "", "", "", 0, domain.ErrHotelNotFound
}

// Get devuelve una reserva por id.
func (uc *BookingUseCase) Get(id string) (*dto.BookingResponse, error) {
	b, err := uc.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := ToResponse(b)
	return &out, nil
}

// ListByGuest lista las reservas del huésped (más recientes primero, por el
// orden de inserción del almacén).
func (uc *BookingUseCase) ListByGuest(email string) ([]dto.BookingResponse, error) {
	list, err := uc.bookingRepo.ListByGuestEmail(email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, ToResponse(b))
	}
	return out, nil
}

// ListAll lista todas las reservas (admin).
func (uc *BookingUseCase) ListAll() ([]dto.BookingResponse, error) {
	list, err := uc.bookingRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, ToResponse(b))
	}
	return out, nil
}

// Cancel pasa la reserva a cancelled. Solo el huésped dueño (por email) o un
// admin pueden cancelar. La reserva no se borra.
func (uc *BookingUseCase) Cancel(id, requesterEmail, requesterRole string) (*dto.BookingResponse, error) {
	b, err := uc.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if requesterRole != entity.RoleAdmin && !strings.EqualFold(b.GuestEmail, requesterEmail) {
		return nil, domain.ErrForbidden
	}
	status := entity.BookingCancelled
	merged, err := uc.bookingRepo.Update(id, repository.BookingPatch{Status: &status})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("booking_id", id).Msg("reserva cancelada")
	out := ToResponse(merged)
	return &out, nil
}

// UpdateStatus cambia el estado a cualquiera de los conocidos (override admin).
func (uc *BookingUseCase) UpdateStatus(id, status string) (*dto.BookingResponse, error) {
	if !entity.ValidBookingStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	merged, err := uc.bookingRepo.Update(id, repository.BookingPatch{Status: &status})
	if err != nil {
		return nil, err
	}
	out := ToResponse(merged)
	return &out, nil
}

// ToResponse mapea la entidad al DTO de salida.
func ToResponse(b *entity.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:              b.ID,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		Location:        b.Location,
		RoomType:        b.RoomType,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		Rooms:           b.Rooms,
		TotalAmount:     b.TotalAmount,
		AmountFormatted: dto.FormatNPR(b.TotalAmount),
		Status:          b.Status,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		SpecialRequests: b.SpecialReqs,
		TransactionID:   b.TransactionID,
		CreatedAt:       b.CreatedAt,
	}
}

func toQuoteResponse(rt entity.RoomType, q pricing.Quote) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		RoomType:       rt.Name,
		NightlyRate:    rt.Price,
		Nights:         q.Nights,
		RoomSubtotal:   q.RoomSubtotal,
		ServiceCharge:  q.ServiceCharge,
		Tax:            q.Tax,
		Total:          q.Total,
		TotalFormatted: dto.FormatNPR(q.Total),
	}
}
