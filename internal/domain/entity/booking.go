package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una reserva.
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingUpcoming  = "upcoming"
)

// ValidBookingStatus indica si s es uno de los estados conocidos.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingConfirmed, BookingPending, BookingCompleted, BookingCancelled, BookingUpcoming:
		return true
	}
	return false
}

// Booking representa una reserva: huésped + hotel + rango de fechas + monto calculado.
// El invariante CheckOut > CheckIn se valida en el caso de uso al crear; las reservas
// nunca se borran físicamente, solo cambian de estado.
type Booking struct {
	ID            string          `json:"id"` // formato HTB + 6 dígitos derivados del reloj
	HotelID       string          `json:"hotelId"`
	HotelName     string          `json:"hotelName"`
	Location      string          `json:"location"`
	RoomType      string          `json:"roomType"`
	CheckIn       time.Time       `json:"checkIn"`
	CheckOut      time.Time       `json:"checkOut"`
	Guests        int             `json:"guests"`
	Rooms         int             `json:"rooms"`
	TotalAmount   decimal.Decimal `json:"totalAmount"` // en unidades enteras de moneda (NPR)
	Status        string          `json:"status"`
	GuestName     string          `json:"guestName"`
	GuestEmail    string          `json:"guestEmail"`
	GuestPhone    string          `json:"guestPhone"`
	SpecialReqs   string          `json:"specialRequests,omitempty"`
	Image         string          `json:"image,omitempty"`
	Rating        float64         `json:"rating,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"` // id de pago simulado, si ya se pagó
	CreatedAt     time.Time       `json:"createdAt"`
}
