package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	appbooking "github.com/skarki/stayhub-api/internal/application/booking"
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
)

// BookingHandler maneja cotizaciones, reservas y comprobantes.
type BookingHandler struct {
	uc        *appbooking.BookingUseCase
	receiptUC *appbooking.ReceiptUseCase
}

// NewBookingHandler construye el handler de reservas.
func NewBookingHandler(uc *appbooking.BookingUseCase, receiptUC *appbooking.ReceiptUseCase) *BookingHandler {
	return &BookingHandler{uc: uc, receiptUC: receiptUC}
}

// Quote godoc
// @Summary      Cotizar una estadía
// @Description  Desglose: subtotal + servicio 10% + IVA 13%. Sin fechas cotiza una noche.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "room_type, rooms, fechas opcionales"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bookings/quote [post]
func (h *BookingHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return c.JSON(h.uc.Quote(in))
}

// Create crea una reserva en estado pending.
// POST /api/bookings
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDates) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATES", Message: "check-out debe ser posterior a check-in"})
		}
		if errors.Is(err, domain.ErrHotelNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "HOTEL_NOT_FOUND", Message: "el hotel no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine lista las reservas del huésped autenticado (por email del token).
// GET /api/bookings
func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.ListByGuest(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID devuelve una reserva. Solo el dueño o un admin pueden verla.
// GET /api/bookings/:id
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	b, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if GetRole(c) != entity.RoleAdmin && b.GuestEmail != GetEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado a la reserva"})
	}
	return c.JSON(b)
}

// Cancel cancela una reserva (dueño o admin).
// POST /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	b, err := h.uc.Cancel(id, GetEmail(c), GetRole(c))
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el dueño o un admin pueden cancelar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(b)
}

// Receipt genera y descarga el comprobante PDF de la reserva.
// GET /api/bookings/:id/receipt
func (h *BookingHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	b, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if GetRole(c) != entity.RoleAdmin && b.GuestEmail != GetEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado a la reserva"})
	}
	pdfBytes, err := h.receiptUC.Generate(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="comprobante-%s.pdf"`, id))
	return c.Send(pdfBytes)
}

// ListAll lista todas las reservas (admin).
// GET /api/admin/bookings
func (h *BookingHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// UpdateStatus cambia el estado de una reserva (admin).
// PUT /api/admin/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	b, err := h.uc.UpdateStatus(id, in.Status)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(b)
}
