package booking_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbooking "github.com/skarki/stayhub-api/internal/application/booking"
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/infrastructure/localstore"
	"github.com/skarki/stayhub-api/pkg/logger"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newBookingUC(t *testing.T) *appbooking.BookingUseCase {
	t.Helper()
	store := localstore.New(filepath.Join(t.TempDir(), "stayhub.json"), logger.Nop())
	bookingRepo := localstore.NewBookingRepository(store, logger.Nop())
	hotelRepo := localstore.NewHotelRepository(store, logger.Nop())
	return appbooking.NewBookingUseCase(bookingRepo, hotelRepo, logger.Nop())
}

func pedidoValido() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		HotelID:   "1",
		RoomType:  "deluxe",
		CheckIn:   fecha(2024, time.March, 15),
		CheckOut:  fecha(2024, time.March, 18),
		Guests:    2,
		Rooms:     1,
		FirstName: "Asha",
		LastName:  "Rai",
		Email:     "asha@email.com",
		Phone:     "+977-9800000000",
	}
}

// La cotización sin fechas es de una noche sobre la tarifa del tipo.
func TestQuote_SinFechas(t *testing.T) {
	uc := newBookingUC(t)

	q := uc.Quote(dto.QuoteRequest{RoomType: "suite", Rooms: 1})
	assert.Equal(t, "Executive Suite", q.RoomType)
	assert.Equal(t, 1, q.Nights)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(18450)), "15000*1.23, fue %s", q.Total)
	assert.Equal(t, "Rs. 18,450", q.TotalFormatted)
}

func TestCreate_PersisteConDesglose(t *testing.T) {
	uc := newBookingUC(t)

	out, err := uc.Create(pedidoValido())
	require.NoError(t, err)

	assert.Equal(t, entity.BookingPending, out.Booking.Status, "la reserva nace pendiente de pago")
	assert.Equal(t, "Grand Himalaya Hotel", out.Booking.HotelName, "el nombre sale del hotel, no del request")
	assert.Equal(t, "Deluxe Room", out.Booking.RoomType)
	assert.Equal(t, "Asha Rai", out.Booking.GuestName)
	assert.True(t, out.Booking.TotalAmount.Equal(decimal.NewFromInt(31365)), "8500*3 noches con recargos, fue %s", out.Booking.TotalAmount)
	assert.Equal(t, 3, out.Quote.Nights)
	assert.Equal(t, "Rs. 31,365", out.Quote.TotalFormatted)

	// Y quedó al frente de la colección.
	list, err := uc.ListByGuest("asha@email.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, out.Booking.ID, list[0].ID)
}

func TestCreate_ValidaOrdenDeFechas(t *testing.T) {
	uc := newBookingUC(t)

	in := pedidoValido()
	in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidDates, "check-out anterior al check-in")

	in = pedidoValido()
	in.CheckOut = in.CheckIn
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidDates, "mismo día no es una estadía")
}

// Un id que no está en la colección admin puede resolver contra el catálogo
// de presentación (los ids 4-6 solo existen allí).
func TestCreate_ResuelveHotelDelCatalogo(t *testing.T) {
	uc := newBookingUC(t)

	in := pedidoValido()
	in.HotelID = "6"
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Heritage Boutique Hotel", out.Booking.HotelName)

	in.HotelID = "no-existe"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

// Solo el dueño (por email, case-insensitive) o un admin pueden cancelar.
func TestCancel_Autorizacion(t *testing.T) {
	uc := newBookingUC(t)

	out, err := uc.Create(pedidoValido())
	require.NoError(t, err)
	id := out.Booking.ID

	_, err = uc.Cancel(id, "otro@email.com", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro huésped no puede cancelar")

	cancelled, err := uc.Cancel(id, "ASHA@email.com", entity.RoleUser)
	require.NoError(t, err, "el dueño cancela aunque el email difiera en mayúsculas")
	assert.Equal(t, entity.BookingCancelled, cancelled.Status)
}

func TestCancel_AdminPuedeCancelarCualquiera(t *testing.T) {
	uc := newBookingUC(t)

	out, err := uc.Create(pedidoValido())
	require.NoError(t, err)

	cancelled, err := uc.Cancel(out.Booking.ID, "admin@stayhub.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCancelled, cancelled.Status)
}

func TestUpdateStatus_ValidaElEstado(t *testing.T) {
	uc := newBookingUC(t)

	out, err := uc.Create(pedidoValido())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(out.Booking.ID, "archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado desconocido")

	updated, err := uc.UpdateStatus(out.Booking.ID, entity.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCompleted, updated.Status)
}
