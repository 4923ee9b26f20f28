package usecase

import (
	"github.com/shopspring/decimal"

	appbooking "github.com/skarki/stayhub-api/internal/application/booking"
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
)

// dashboardRecentBookings cuántas reservas recientes muestra el dashboard.
const dashboardRecentBookings = 5

// DashboardUseCase resumen del dashboard de administración: conteos totales,
// ingresos y reservas recientes. Todo sale de recorrer las colecciones del
// almacén local (no hay consultas agregadas: el almacén no tiene índices).
type DashboardUseCase struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	hotelRepo   repository.HotelRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(bookingRepo repository.BookingRepository, userRepo repository.UserRepository, hotelRepo repository.HotelRepository) *DashboardUseCase {
	return &DashboardUseCase{bookingRepo: bookingRepo, userRepo: userRepo, hotelRepo: hotelRepo}
}

// GetStats arma el resumen. TotalRevenue suma los totales de reservas no
// canceladas; las recientes van en el orden del almacén (nuevas primero).
func (uc *DashboardUseCase) GetStats() (*dto.DashboardStatsResponse, error) {
	bookings, err := uc.bookingRepo.GetAll()
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	hotels, err := uc.hotelRepo.GetAll()
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, b := range bookings {
		if b.Status != entity.BookingCancelled {
			revenue = revenue.Add(b.TotalAmount)
		}
	}

	recent := bookings
	if len(recent) > dashboardRecentBookings {
		recent = recent[:dashboardRecentBookings]
	}
	recentDTOs := make([]dto.BookingResponse, 0, len(recent))
	for _, b := range recent {
		recentDTOs = append(recentDTOs, appbooking.ToResponse(b))
	}

	return &dto.DashboardStatsResponse{
		TotalHotels:           len(hotels),
		TotalBookings:         len(bookings),
		TotalUsers:            len(users),
		TotalRevenue:          revenue,
		TotalRevenueFormatted: dto.FormatNPR(revenue),
		RecentBookings:        recentDTOs,
	}, nil
}
