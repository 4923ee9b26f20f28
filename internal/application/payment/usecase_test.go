package payment_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/application/payment"
	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/infrastructure/localstore"
	"github.com/skarki/stayhub-api/pkg/logger"
)

func newPaymentUC(t *testing.T, delay time.Duration) (*payment.PaymentUseCase, *localstore.BookingRepository) {
	t.Helper()
	store := localstore.New(filepath.Join(t.TempDir(), "stayhub.json"), logger.Nop())
	bookingRepo := localstore.NewBookingRepository(store, logger.Nop())
	return payment.NewPaymentUseCase(bookingRepo, delay, logger.Nop()), bookingRepo
}

// El pago confirma la reserva y fabrica un comprobante con transaction id ESW.
func TestPay_ConfirmaLaReserva(t *testing.T) {
	uc, repo := newPaymentUC(t, 0)

	// HTB123458 es la reserva "upcoming" de muestra.
	receipt, err := uc.Pay(context.Background(), dto.PaymentRequest{
		BookingID: "HTB123458",
		WalletID:  "9800000000",
		MPIN:      "1234",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.TransactionID, "ESW"), "el transaction id empieza con ESW, fue %s", receipt.TransactionID)
	assert.Equal(t, "HTB123458", receipt.BookingID)
	assert.Equal(t, "Mountain View Lodge - Standard Room", receipt.Product)
	assert.Equal(t, "Rs. 19,000", receipt.AmountFormatted)
	assert.False(t, receipt.PaidAt.IsZero())

	b, err := repo.GetByID("HTB123458")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, b.Status, "la reserva pagada queda confirmada")
	assert.Equal(t, receipt.TransactionID, b.TransactionID)
}

// Pagos repetidos generan transaction ids distintos: no hay idempotencia.
func TestPay_PagosRepetidosGeneranIDsDistintos(t *testing.T) {
	uc, _ := newPaymentUC(t, 0)

	in := dto.PaymentRequest{BookingID: "HTB123458", WalletID: "9800000000", MPIN: "1234"}
	primero, err := uc.Pay(context.Background(), in)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	segundo, err := uc.Pay(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, primero.TransactionID, segundo.TransactionID)
}

func TestPay_ValidaWalletYMPIN(t *testing.T) {
	uc, _ := newPaymentUC(t, 0)

	_, err := uc.Pay(context.Background(), dto.PaymentRequest{BookingID: "HTB123458", WalletID: "", MPIN: "1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "wallet vacía")

	_, err = uc.Pay(context.Background(), dto.PaymentRequest{BookingID: "HTB123458", WalletID: "98", MPIN: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "MPIN de 3 caracteres")

	_, err = uc.Pay(context.Background(), dto.PaymentRequest{BookingID: "HTB123458", WalletID: "98", MPIN: "12345"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "MPIN de 5 caracteres")
}

func TestPay_ReservaInexistente(t *testing.T) {
	uc, _ := newPaymentUC(t, 0)

	_, err := uc.Pay(context.Background(), dto.PaymentRequest{BookingID: "HTB000000", WalletID: "98", MPIN: "1234"})
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// Un contexto cancelado durante el retardo no confirma la reserva.
func TestPay_CancelacionNoConfirma(t *testing.T) {
	uc, repo := newPaymentUC(t, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := uc.Pay(ctx, dto.PaymentRequest{BookingID: "HTB123458", WalletID: "98", MPIN: "1234"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	b, err := repo.GetByID("HTB123458")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingUpcoming, b.Status, "la reserva sigue en su estado original")
	assert.Empty(t, b.TransactionID)
}
