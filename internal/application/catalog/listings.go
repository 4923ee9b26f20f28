package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/skarki/stayhub-api/internal/domain/entity"
)

// Catálogo de presentación: lista estática en memoria, igual que la página de
// hoteles de la demo. No sale del almacén local; el admin gestiona su propia
// colección de hoteles por separado.

func npr(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Listings devuelve los registros de presentación del catálogo en su orden original.
func Listings() []*entity.HotelListing {
	return []*entity.HotelListing{
		{
			ID:          "1",
			Name:        "Grand Himalaya Hotel",
			Location:    "Thamel, Kathmandu",
			Rating:      4.8,
			Reviews:     1248,
			Price:       npr(8500),
			Image:       "/assets/hotel-room-1.jpg",
			Amenities:   []string{"wifi", "parking", "restaurant", "pool"},
			Description: "Luxury hotel in the heart of Kathmandu with stunning mountain views and world-class amenities.",
		},
		{
			ID:          "2",
			Name:        "Royal Palace Resort",
			Location:    "Lakeside, Pokhara",
			Rating:      4.6,
			Reviews:     892,
			Price:       npr(12000),
			Image:       "/assets/hotel-room-2.jpg",
			Amenities:   []string{"wifi", "restaurant", "pool", "parking"},
			Description: "Elegant lakeside resort offering breathtaking views of Phewa Lake and the Annapurna range.",
		},
		{
			ID:          "3",
			Name:        "Business Central Hotel",
			Location:    "New Baneshwor, Kathmandu",
			Rating:      4.4,
			Reviews:     567,
			Price:       npr(6500),
			Image:       "/assets/hotel-room-3.jpg",
			Amenities:   []string{"wifi", "parking", "restaurant"},
			Description: "Modern business hotel perfect for corporate travelers with state-of-the-art meeting facilities.",
		},
		{
			ID:          "4",
			Name:        "Mountain View Lodge",
			Location:    "Nagarkot, Bhaktapur",
			Rating:      4.7,
			Reviews:     423,
			Price:       npr(9500),
			Image:       "/assets/hotel-room-1.jpg",
			Amenities:   []string{"wifi", "restaurant", "parking"},
			Description: "Peaceful retreat with panoramic mountain views and traditional Nepali hospitality.",
		},
		{
			ID:          "5",
			Name:        "City Center Plaza",
			Location:    "Lazimpat, Kathmandu",
			Rating:      4.2,
			Reviews:     789,
			Price:       npr(7800),
			Image:       "/assets/hotel-room-2.jpg",
			Amenities:   []string{"wifi", "parking", "restaurant", "pool"},
			Description: "Contemporary hotel in prime location with easy access to major attractions.",
		},
		{
			ID:          "6",
			Name:        "Heritage Boutique Hotel",
			Location:    "Bhaktapur Durbar Square",
			Rating:      4.9,
			Reviews:     634,
			Price:       npr(15000),
			Image:       "/assets/hotel-room-3.jpg",
			Amenities:   []string{"wifi", "restaurant", "parking"},
			Description: "Authentic Newari architecture hotel offering cultural immersion experience.",
		},
	}
}

// RoomTypes tipos de habitación ofertados (tarifa por noche).
func RoomTypes() []entity.RoomType {
	return []entity.RoomType{
		{Code: "standard", Name: "Standard Room", Price: npr(6500)},
		{Code: "deluxe", Name: "Deluxe Room", Price: npr(8500)},
		{Code: "suite", Name: "Executive Suite", Price: npr(15000)},
	}
}

// RoomTypeFor devuelve el tipo de habitación por código; deluxe si el código
// no se reconoce (fallback heredado de la página de reserva).
func RoomTypeFor(code string) entity.RoomType {
	for _, rt := range RoomTypes() {
		if rt.Code == code {
			return rt
		}
	}
	return entity.RoomType{Code: "deluxe", Name: "Deluxe Room", Price: npr(8500)}
}

// ListingByID busca un registro de presentación por id (nil si no existe).
func ListingByID(id string) *entity.HotelListing {
	for _, l := range Listings() {
		if l.ID == id {
			return l
		}
	}
	return nil
}
