package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skarki/stayhub-api/internal/application/auth"
	appbooking "github.com/skarki/stayhub-api/internal/application/booking"
	"github.com/skarki/stayhub-api/internal/application/catalog"
	"github.com/skarki/stayhub-api/internal/application/payment"
	"github.com/skarki/stayhub-api/internal/application/usecase"
	"github.com/skarki/stayhub-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.CatalogUseCase
	BookingUC   *appbooking.BookingUseCase
	ReceiptUC   *appbooking.ReceiptUseCase
	PaymentUC   *payment.PaymentUseCase
	HotelUC     *usecase.HotelUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Catálogo (público)
	hotels := api.Group("/hotels")
	hotelHandler := NewHotelHandler(deps.CatalogUC, deps.HotelUC)
	hotels.Get("/", hotelHandler.Catalog)
	hotels.Get("/featured", hotelHandler.Featured)
	hotels.Get("/rooms", hotelHandler.Rooms)

	// Cotización (público: no requiere sesión para ver el desglose)
	bookingHandler := NewBookingHandler(deps.BookingUC, deps.ReceiptUC)
	api.Post("/bookings/quote", bookingHandler.Quote)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reservas (protegido)
	bookings := protected.Group("/bookings")
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.ListMine)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Post("/:id/cancel", bookingHandler.Cancel)
	bookings.Get("/:id/receipt", bookingHandler.Receipt)

	// Pagos (protegido)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	protected.Post("/payments", paymentHandler.Pay)

	// Perfil (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me/profile", userHandler.UpdateProfile)

	// Admin (protegido + rol admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))

	adminHotels := admin.Group("/hotels")
	adminHotels.Post("/", hotelHandler.Create)
	adminHotels.Get("/", hotelHandler.List)
	adminHotels.Get("/:id", hotelHandler.GetByID)
	adminHotels.Put("/:id", hotelHandler.Update)
	adminHotels.Delete("/:id", hotelHandler.Delete)

	admin.Get("/bookings", bookingHandler.ListAll)
	admin.Put("/bookings/:id/status", bookingHandler.UpdateStatus)

	admin.Get("/users", userHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard", dashboardHandler.Stats)
}
