// Package pricing implementa el cálculo de cotización de una estadía
// (servicio de dominio, sin dependencias de infraestructura).
//
// Desglose:
//
//	noches      = max(1, días entre check-in y check-out)   (1 si falta alguna fecha)
//	subtotal    = tarifa * habitaciones * noches
//	servicio    = subtotal * 10%
//	IVA         = subtotal * 13%
//	total       = subtotal + servicio + IVA
//
// Política de redondeo: todos los montos derivados se redondean al entero de
// moneda más cercano (half-up), porque la demo muestra importes en NPR enteros.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	serviceRate = decimal.NewFromFloat(0.10) // recargo por servicio
	vatRate     = decimal.NewFromFloat(0.13) // IVA Nepal
)

// Quote desglose de precios de una estadía.
type Quote struct {
	Nights        int
	RoomSubtotal  decimal.Decimal
	ServiceCharge decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// Nights devuelve las noches de estadía entre checkIn y checkOut.
// Si alguna fecha es cero, o la diferencia es menor a un día, devuelve 1.
// No valida el orden de fechas: eso es responsabilidad del caso de uso.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 1
	}
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// FromTotal reconstruye el desglose a partir de un total ya cobrado: despeja
// el subtotal de total = subtotal * (1 + servicio + IVA) y el IVA absorbe el
// residuo de redondeo, así las líneas siempre suman exactamente el total.
func FromTotal(total decimal.Decimal, nights int) Quote {
	combined := decimal.NewFromInt(1).Add(serviceRate).Add(vatRate)
	subtotal := total.Div(combined).Round(0)
	service := subtotal.Mul(serviceRate).Round(0)
	return Quote{
		Nights:        nights,
		RoomSubtotal:  subtotal,
		ServiceCharge: service,
		Tax:           total.Sub(subtotal).Sub(service),
		Total:         total,
	}
}

// Calculate calcula la cotización para la tarifa por noche, cantidad de
// habitaciones y rango de fechas dados.
func Calculate(rate decimal.Decimal, rooms int, checkIn, checkOut time.Time) Quote {
	nights := Nights(checkIn, checkOut)

	subtotal := rate.Mul(decimal.NewFromInt(int64(rooms))).Mul(decimal.NewFromInt(int64(nights))).Round(0)
	service := subtotal.Mul(serviceRate).Round(0)
	tax := subtotal.Mul(vatRate).Round(0)

	return Quote{
		Nights:        nights,
		RoomSubtotal:  subtotal,
		ServiceCharge: service,
		Tax:           tax,
		Total:         subtotal.Add(service).Add(tax),
	}
}
