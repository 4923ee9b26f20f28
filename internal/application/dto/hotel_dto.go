package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateHotelRequest alta de hotel (admin).
type CreateHotelRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Location    string  `json:"location" validate:"required,max=200"`
	Rooms       int     `json:"rooms" validate:"required,min=1"`
	Rating      float64 `json:"rating" validate:"min=0,max=5"`
	Status      string  `json:"status" validate:"omitempty,oneof=active maintenance inactive"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

// UpdateHotelRequest edición parcial de hotel (admin). nil = sin cambio.
type UpdateHotelRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Location    *string  `json:"location" validate:"omitempty,max=200"`
	Rooms       *int     `json:"rooms" validate:"omitempty,min=1"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active maintenance inactive"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
}

// HotelResponse salida de un hotel (registro admin).
type HotelResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Rooms       int       `json:"rooms"`
	Rating      float64   `json:"rating"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CatalogFilterRequest filtros del catálogo público (query params).
// Todos opcionales; sin filtros devuelve la lista completa en su orden original.
type CatalogFilterRequest struct {
	Search    string  `query:"search"`              // substring sobre nombre/ubicación
	Location  string  `query:"location"`            // "" o "all" = todas
	MinPrice  int64   `query:"min_price"`           // inclusivo
	MaxPrice  int64   `query:"max_price"`           // inclusivo; 0 = sin tope
	MinRating float64 `query:"min_rating"`          // umbral mínimo
	SortBy    string  `query:"sort_by"`             // popularity | price-low | price-high | rating | reviews
}

// ListingResponse registro de presentación del catálogo.
type ListingResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Rating         float64         `json:"rating"`
	Reviews        int             `json:"reviews"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	Image          string          `json:"image,omitempty"`
	Amenities      []string        `json:"amenities,omitempty"`
	Description    string          `json:"description,omitempty"`
}

// RoomTypeResponse tipo de habitación ofertado.
type RoomTypeResponse struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
}
