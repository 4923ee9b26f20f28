package repository

import "github.com/skarki/stayhub-api/internal/domain/entity"

// HotelRepository define el puerto de persistencia para Hotel (DIP).
type HotelRepository interface {
	GetAll() ([]*entity.Hotel, error)
	SaveAll(hotels []*entity.Hotel) error
	Add(hotel *entity.Hotel) (*entity.Hotel, error)
	Update(id string, updates HotelPatch) (*entity.Hotel, error)
	GetByID(id string) (*entity.Hotel, error)
	// Delete elimina por id y persiste. Es idempotente: borrar un id inexistente
	// no es error (comportamiento heredado de la fuente; ver DESIGN.md).
	Delete(id string) error
}

// HotelPatch campos parciales para Update (nil = sin cambio).
type HotelPatch struct {
	Name        *string
	Location    *string
	Rooms       *int
	Rating      *float64
	Status      *string
	Description *string
}
