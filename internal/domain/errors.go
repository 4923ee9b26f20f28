package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrHotelNotFound   = errors.New("hotel no encontrado")
	ErrBookingNotFound = errors.New("reserva no encontrada")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidDates    = errors.New("la fecha de salida debe ser posterior a la de entrada")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
)
