package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest entrada del pago simulado estilo billetera (eSewa).
// Cualquier wallet id + MPIN de 4 caracteres es aceptado: no hay liquidación real.
type PaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	WalletID  string `json:"wallet_id" validate:"required"`
	MPIN      string `json:"mpin" validate:"required,len=4"`
}

// PaymentReceipt comprobante fabricado del pago simulado.
// Pagos repetidos generan transaction_id distintos; no hay idempotencia ni ledger.
type PaymentReceipt struct {
	TransactionID   string          `json:"transaction_id"` // ESW + reloj + sufijo aleatorio
	BookingID       string          `json:"booking_id"`
	Product         string          `json:"product"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	PaidAt          time.Time       `json:"paid_at"`
}
