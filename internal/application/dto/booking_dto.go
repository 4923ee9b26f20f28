package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest entrada para cotizar una estadía. Las fechas son opcionales:
// sin rango de fechas se cotiza una noche.
type QuoteRequest struct {
	RoomType string     `json:"room_type" validate:"required,oneof=standard deluxe suite"`
	Rooms    int        `json:"rooms" validate:"required,min=1,max=5"`
	CheckIn  *time.Time `json:"check_in" validate:"omitempty"`
	CheckOut *time.Time `json:"check_out" validate:"omitempty"`
}

// QuoteResponse desglose de la cotización.
type QuoteResponse struct {
	RoomType       string          `json:"room_type"`
	NightlyRate    decimal.Decimal `json:"nightly_rate"`
	Nights         int             `json:"nights"`
	RoomSubtotal   decimal.Decimal `json:"room_subtotal"`
	ServiceCharge  decimal.Decimal `json:"service_charge"` // 10%
	Tax            decimal.Decimal `json:"tax"`            // IVA 13%
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"` // "Rs. 31,365"
}

// CreateBookingRequest entrada para crear una reserva.
type CreateBookingRequest struct {
	HotelID         string    `json:"hotel_id" validate:"required"`
	RoomType        string    `json:"room_type" validate:"required,oneof=standard deluxe suite"`
	CheckIn         time.Time `json:"check_in" validate:"required"`
	CheckOut        time.Time `json:"check_out" validate:"required"`
	Guests          int       `json:"guests" validate:"required,min=1,max=6"`
	Rooms           int       `json:"rooms" validate:"required,min=1,max=5"`
	FirstName       string    `json:"first_name" validate:"required,max=100"`
	LastName        string    `json:"last_name" validate:"required,max=100"`
	Email           string    `json:"email" validate:"required,email"`
	Phone           string    `json:"phone" validate:"required,max=30"`
	SpecialRequests string    `json:"special_requests" validate:"omitempty,max=500"`
}

// UpdateBookingStatusRequest cambio de estado (admin).
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed pending completed cancelled upcoming"`
}

// BookingResponse salida de una reserva.
type BookingResponse struct {
	ID              string          `json:"id"`
	HotelID         string          `json:"hotel_id"`
	HotelName       string          `json:"hotel_name"`
	Location        string          `json:"location"`
	RoomType        string          `json:"room_type"`
	CheckIn         time.Time       `json:"check_in"`
	CheckOut        time.Time       `json:"check_out"`
	Guests          int             `json:"guests"`
	Rooms           int             `json:"rooms"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AmountFormatted string          `json:"amount_formatted"`
	Status          string          `json:"status"`
	GuestName       string          `json:"guest_name"`
	GuestEmail      string          `json:"guest_email"`
	GuestPhone      string          `json:"guest_phone"`
	SpecialRequests string          `json:"special_requests,omitempty"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateBookingResponse reserva creada + desglose cotizado.
type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Quote   QuoteResponse   `json:"quote"`
}
