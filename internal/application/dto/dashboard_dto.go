package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse resumen del dashboard de administración.
// TotalRevenue suma los totales de reservas no canceladas.
type DashboardStatsResponse struct {
	TotalHotels           int               `json:"total_hotels"`
	TotalBookings         int               `json:"total_bookings"`
	TotalUsers            int               `json:"total_users"`
	TotalRevenue          decimal.Decimal   `json:"total_revenue"`
	TotalRevenueFormatted string            `json:"total_revenue_formatted"`
	RecentBookings        []BookingResponse `json:"recent_bookings"`
}
