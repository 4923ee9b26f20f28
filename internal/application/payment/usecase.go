// Package payment implementa el pago simulado estilo billetera (eSewa).
// No hay liquidación, ni llamada de red, ni idempotencia: tras el retardo se
// fabrica un comprobante con un transaction id derivado del reloj. Pagos
// repetidos generan ids distintos sin conciliación alguna.
package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
	"github.com/skarki/stayhub-api/pkg/logger"
)

const mpinLength = 4

// PaymentUseCase pago simulado de una reserva.
type PaymentUseCase struct {
	bookingRepo repository.BookingRepository
	delay       time.Duration
	log         *logger.Logger
}

// NewPaymentUseCase construye el caso de uso. delay simula el procesamiento
// de la pasarela (0 = inmediato, útil en tests).
func NewPaymentUseCase(bookingRepo repository.BookingRepository, delay time.Duration, log *logger.Logger) *PaymentUseCase {
	return &PaymentUseCase{bookingRepo: bookingRepo, delay: delay, log: log}
}

// newTransactionID fabrica el id de transacción: ESW + reloj en ms + sufijo aleatorio.
func newTransactionID(now time.Time) string {
	return fmt.Sprintf("ESW%d%d", now.UnixMilli(), rand.Intn(1000))
}

// Pay valida wallet id y MPIN (exactamente 4 caracteres; cualquier valor
// sirve), espera el retardo simulado y confirma la reserva con el transaction
// id fabricado. Cancelable vía contexto: un request abortado no confirma nada.
func (uc *PaymentUseCase) Pay(ctx context.Context, in dto.PaymentRequest) (*dto.PaymentReceipt, error) {
	if in.WalletID == "" || len(in.MPIN) != mpinLength {
		return nil, domain.ErrInvalidInput
	}

	b, err := uc.bookingRepo.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}

	if uc.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(uc.delay):
		}
	}

	now := time.Now()
	txn := newTransactionID(now)

	status := entity.BookingConfirmed
	if _, err := uc.bookingRepo.Update(in.BookingID, repository.BookingPatch{
		Status:        &status,
		TransactionID: &txn,
	}); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("booking_id", b.ID).
		Str("transaction_id", txn).
		Str("amount", b.TotalAmount.String()).
		Msg("pago simulado exitoso")

	return &dto.PaymentReceipt{
		TransactionID:   txn,
		BookingID:       b.ID,
		Product:         b.HotelName + " - " + b.RoomType,
		Amount:          b.TotalAmount,
		AmountFormatted: dto.FormatNPR(b.TotalAmount),
		PaidAt:          now,
	}, nil
}
