package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/application/payment"
	"github.com/skarki/stayhub-api/internal/domain"
)

// PaymentHandler maneja el pago simulado de reservas.
type PaymentHandler struct {
	uc *payment.PaymentUseCase
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(uc *payment.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Pay godoc
// @Summary      Pagar una reserva (simulado)
// @Description  Acepta cualquier wallet id + MPIN de 4 caracteres. Confirma la reserva y fabrica un transaction id.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentRequest  true  "booking_id, wallet_id, mpin"
// @Success      200   {object}  dto.PaymentReceipt
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Pay(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	receipt, err := h.uc.Pay(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "wallet id y MPIN de 4 caracteres son requeridos"})
		}
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "CANCELLED", Message: "pago cancelado por el cliente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(receipt)
}
