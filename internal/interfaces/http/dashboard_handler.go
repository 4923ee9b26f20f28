package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/application/usecase"
)

// DashboardHandler expone las estadísticas del panel admin.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats devuelve totales, ingresos y reservas recientes.
// GET /api/admin/dashboard
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}
