package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skarki/stayhub-api/internal/application/catalog"
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/application/usecase"
	"github.com/skarki/stayhub-api/internal/domain"
)

// HotelHandler maneja el catálogo público y el CRUD de hoteles (admin).
type HotelHandler struct {
	catalogUC *catalog.CatalogUseCase
	hotelUC   *usecase.HotelUseCase
}

// NewHotelHandler construye el handler de hoteles.
func NewHotelHandler(catalogUC *catalog.CatalogUseCase, hotelUC *usecase.HotelUseCase) *HotelHandler {
	return &HotelHandler{catalogUC: catalogUC, hotelUC: hotelUC}
}

// Catalog godoc
// @Summary      Catálogo de hoteles
// @Description  Filtra por búsqueda, ubicación, rango de precio y rating mínimo; ordena por popularity, price-low, price-high, rating o reviews.
// @Tags         hotels
// @Produce      json
// @Param        search      query  string  false  "substring sobre nombre/ubicación"
// @Param        location    query  string  false  "ubicación exacta; '' o 'all' = todas"
// @Param        min_price   query  int     false  "precio mínimo inclusivo"
// @Param        max_price   query  int     false  "precio máximo inclusivo; 0 = sin tope"
// @Param        min_rating  query  number  false  "rating mínimo"
// @Param        sort_by     query  string  false  "popularity | price-low | price-high | rating | reviews"
// @Success      200  {array}  dto.ListingResponse
// @Router       /api/hotels [get]
func (h *HotelHandler) Catalog(c *fiber.Ctx) error {
	var in dto.CatalogFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	return c.JSON(h.catalogUC.Filter(in))
}

// Featured devuelve los hoteles destacados (mejor rating primero).
// GET /api/hotels/featured
func (h *HotelHandler) Featured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 3)
	return c.JSON(h.catalogUC.Featured(limit))
}

// Rooms devuelve los tipos de habitación ofertados con su tarifa.
// GET /api/hotels/rooms
func (h *HotelHandler) Rooms(c *fiber.Ctx) error {
	return c.JSON(h.catalogUC.Rooms())
}

// Create da de alta un hotel (admin).
// POST /api/admin/hotels
func (h *HotelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHotelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	hotel, err := h.hotelUC.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(hotel)
}

// List lista los hoteles administrados (admin).
// GET /api/admin/hotels
func (h *HotelHandler) List(c *fiber.Ctx) error {
	list, err := h.hotelUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID devuelve un hotel administrado (admin).
// GET /api/admin/hotels/:id
func (h *HotelHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	hotel, err := h.hotelUC.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrHotelNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "hotel no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(hotel)
}

// Update edita parcialmente un hotel (admin).
// PUT /api/admin/hotels/:id
func (h *HotelHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.UpdateHotelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	hotel, err := h.hotelUC.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrHotelNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "hotel no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(hotel)
}

// Delete elimina un hotel (admin). Borrar un id inexistente no es error.
// DELETE /api/admin/hotels/:id
func (h *HotelHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.hotelUC.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
