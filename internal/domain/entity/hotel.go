package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un hotel.
const (
	HotelActive      = "active"
	HotelMaintenance = "maintenance"
	HotelInactive    = "inactive"
)

// ValidHotelStatus indica si s es uno de los estados conocidos.
func ValidHotelStatus(s string) bool {
	switch s {
	case HotelActive, HotelMaintenance, HotelInactive:
		return true
	}
	return false
}

// Hotel registro del catálogo. Solo el admin crea/borra hoteles.
type Hotel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Rooms       int       `json:"rooms"`
	Rating      float64   `json:"rating"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HotelListing registro de presentación del catálogo público (página de hoteles).
// Incluye precio por noche y reseñas, que no forman parte del registro admin.
type HotelListing struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Price       decimal.Decimal `json:"price"` // por noche, unidades enteras
	Image       string          `json:"image,omitempty"`
	Amenities   []string        `json:"amenities,omitempty"`
	Description string          `json:"description,omitempty"`
}

// RoomType tipo de habitación ofertado en el detalle de un hotel.
type RoomType struct {
	Code  string          `json:"code"` // standard, deluxe, suite
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"` // por noche
}
