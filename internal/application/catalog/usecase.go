// Package catalog implementa el catálogo público: filtro y orden en memoria
// sobre la lista estática de presentación. Sin paginación ni índices: se
// re-filtra la lista completa en cada llamada, preservando el orden original.
package catalog

import (
	"sort"
	"strings"

	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain/entity"
)

// Modos de orden soportados (página de hoteles de la demo).
const (
	SortPopularity = "popularity" // orden original de la lista
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortRating     = "rating"
	SortReviews    = "reviews"
)

// CatalogUseCase filtro/orden del catálogo y destacados de la portada.
type CatalogUseCase struct{}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

// Filter aplica los filtros sobre la lista completa y luego el orden pedido.
// Criterios (todos en conjunción):
//   - Search: substring case-insensitive sobre nombre O ubicación;
//   - Location: "" o "all" aceptan todo, si no substring case-insensitive;
//   - MinPrice/MaxPrice: rango inclusivo (MaxPrice 0 = sin tope);
//   - MinRating: umbral mínimo inclusivo.
func (uc *CatalogUseCase) Filter(in dto.CatalogFilterRequest) []dto.ListingResponse {
	search := strings.ToLower(in.Search)
	location := strings.ToLower(in.Location)

	filtered := make([]*entity.HotelListing, 0)
	for _, h := range Listings() {
		if search != "" &&
			!strings.Contains(strings.ToLower(h.Name), search) &&
			!strings.Contains(strings.ToLower(h.Location), search) {
			continue
		}
		if location != "" && location != "all" &&
			!strings.Contains(strings.ToLower(h.Location), location) {
			continue
		}
		price := h.Price.IntPart()
		if price < in.MinPrice {
			continue
		}
		if in.MaxPrice > 0 && price > in.MaxPrice {
			continue
		}
		if h.Rating < in.MinRating {
			continue
		}
		filtered = append(filtered, h)
	}

	sortListings(filtered, in.SortBy)

	out := make([]dto.ListingResponse, 0, len(filtered))
	for _, h := range filtered {
		out = append(out, toListingResponse(h))
	}
	return out
}

// Featured devuelve hasta limit destacados para la portada, por rating descendente.
func (uc *CatalogUseCase) Featured(limit int) []dto.ListingResponse {
	list := Listings()
	sortListings(list, SortRating)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	out := make([]dto.ListingResponse, 0, len(list))
	for _, h := range list {
		out = append(out, toListingResponse(h))
	}
	return out
}

// Rooms devuelve los tipos de habitación ofertados.
func (uc *CatalogUseCase) Rooms() []dto.RoomTypeResponse {
	types := RoomTypes()
	out := make([]dto.RoomTypeResponse, 0, len(types))
	for _, rt := range types {
		out = append(out, dto.RoomTypeResponse{
			Code:           rt.Code,
			Name:           rt.Name,
			Price:          rt.Price,
			PriceFormatted: dto.FormatNPR(rt.Price),
		})
	}
	return out
}

// sortListings ordena in-place. Orden estable: empates conservan el orden original.
// Un modo desconocido (o popularity) deja la lista como está.
func sortListings(list []*entity.HotelListing, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price.LessThan(list[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price.GreaterThan(list[j].Price) })
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	case SortReviews:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Reviews > list[j].Reviews })
	}
}

func toListingResponse(h *entity.HotelListing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:             h.ID,
		Name:           h.Name,
		Location:       h.Location,
		Rating:         h.Rating,
		Reviews:        h.Reviews,
		Price:          h.Price,
		PriceFormatted: dto.FormatNPR(h.Price),
		Image:          h.Image,
		Amenities:      h.Amenities,
		Description:    h.Description,
	}
}
