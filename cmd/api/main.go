package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/skarki/stayhub-api/internal/application/auth"
	appbooking "github.com/skarki/stayhub-api/internal/application/booking"
	"github.com/skarki/stayhub-api/internal/application/catalog"
	"github.com/skarki/stayhub-api/internal/application/payment"
	"github.com/skarki/stayhub-api/internal/application/usecase"
	"github.com/skarki/stayhub-api/internal/infrastructure/localstore"
	infrapdf "github.com/skarki/stayhub-api/internal/infrastructure/pdf"
	httpRouter "github.com/skarki/stayhub-api/internal/interfaces/http"
	"github.com/skarki/stayhub-api/pkg/config"
	"github.com/skarki/stayhub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	// Almacén local: un archivo JSON clave/valor hace de "base de datos" de la demo.
	store := localstore.New(cfg.Store.Path, log)
	bookingRepo := localstore.NewBookingRepository(store, log)
	userRepo := localstore.NewUserRepository(store, log)
	hotelRepo := localstore.NewHotelRepository(store, log)
	sessionRepo := localstore.NewSessionRepository(store, log)

	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.Config{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		Delay:       time.Duration(cfg.Sim.AuthDelayMS) * time.Millisecond,
		AdminEmails: cfg.App.AdminEmails,
	}, log)

	catalogUC := catalog.NewCatalogUseCase()
	bookingUC := appbooking.NewBookingUseCase(bookingRepo, hotelRepo, log)
	receiptUC := appbooking.NewReceiptUseCase(bookingRepo, infrapdf.NewMarotoReceiptGenerator())
	paymentUC := payment.NewPaymentUseCase(bookingRepo, time.Duration(cfg.Sim.PaymentDelayMS)*time.Millisecond, log)
	hotelUC := usecase.NewHotelUseCase(hotelRepo)
	userUC := usecase.NewUserUseCase(userRepo, sessionRepo)
	dashboardUC := usecase.NewDashboardUseCase(bookingRepo, userRepo, hotelRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StayHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		BookingUC:   bookingUC,
		ReceiptUC:   receiptUC,
		PaymentUC:   paymentUC,
		HotelUC:     hotelUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
