package booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skarki/stayhub-api/internal/application/catalog"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/pricing"
	"github.com/skarki/stayhub-api/internal/domain/repository"
)

// ReceiptData todo lo que necesita el generador para armar el comprobante.
type ReceiptData struct {
	Booking *entity.Booking
	Quote   pricing.Quote
	// NightlyRate tarifa por noche del tipo de habitación reservado.
	NightlyRate decimal.Decimal
	IssuedAt    time.Time
}

// ReceiptPDFGenerator puerto de generación del comprobante en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error)
}

// ReceiptUseCase genera el comprobante PDF de una reserva.
type ReceiptUseCase struct {
	bookingRepo repository.BookingRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(bookingRepo repository.BookingRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{bookingRepo: bookingRepo, generator: generator}
}

// Generate arma el comprobante de la reserva. El total persistido es la
// fuente de verdad (es el monto que cobró el pago): el desglose se recalcula
// desde la tarifa vigente solo si reproduce ese total; si la tarifa cambió
// desde la reserva, se reconstruye a partir del total guardado.
func (uc *ReceiptUseCase) Generate(ctx context.Context, bookingID string) ([]byte, error) {
	b, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	rt := roomTypeByName(b.RoomType)
	q := pricing.Calculate(rt.Price, b.Rooms, b.CheckIn, b.CheckOut)
	rate := rt.Price
	if !q.Total.Equal(b.TotalAmount) {
		rooms := b.Rooms
		if rooms < 1 {
			rooms = 1
		}
		q = pricing.FromTotal(b.TotalAmount, pricing.Nights(b.CheckIn, b.CheckOut))
		rate = q.RoomSubtotal.Div(decimal.NewFromInt(int64(rooms * q.Nights))).Round(0)
	}

	return uc.generator.GenerateReceiptPDF(ctx, ReceiptData{
		Booking:     b,
		Quote:       q,
		NightlyRate: rate,
		IssuedAt:    time.Now(),
	})
}

// roomTypeByName resuelve el tipo por nombre mostrado (la reserva guarda
// "Deluxe Room", no el código).
func roomTypeByName(name string) entity.RoomType {
	for _, rt := range catalog.RoomTypes() {
		if rt.Name == name {
			return rt
		}
	}
	return catalog.RoomTypeFor("")
}
