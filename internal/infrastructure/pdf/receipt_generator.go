// Package pdf implementa la generación del comprobante de reserva en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StayHub  │  Referencia de reserva + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HOTEL: Nombre + Ubicación                                   │
//	│  HUÉSPED: Nombre + contacto                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Habitación | Noches | Hab. | Tarifa | Subtotal       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Servicio 10% / IVA 13% / TOTAL          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Transaction ID + QR + leyenda de demo               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbooking "github.com/skarki/stayhub-api/internal/application/booking"
	"github.com/skarki/stayhub-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa booking.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, data appbooking.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Reserva", true).
		WithAuthor("StayHub", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(hotelRow(data))
	m.AddRows(guestRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(stayRow(data))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(data) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y referencia de reserva + fecha (der).
func headerRow(data appbooking.ReceiptData) core.Row {
	b := data.Booking
	fecha := data.IssuedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("StayHub", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de reserva", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REFERENCIA DE RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(b.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// hotelRow: datos del hotel.
func hotelRow(data appbooking.ReceiptData) core.Row {
	b := data.Booking
	return row.New(12).Add(
		col.New(12).Add(
			text.New("HOTEL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", b.HotelName, b.Location),
				props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

// guestRow: datos del huésped.
func guestRow(data appbooking.ReceiptData) core.Row {
	b := data.Booking
	return row.New(14).Add(
		col.New(12).Add(
			text.New("HUÉSPED", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(b.GuestName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s", b.GuestEmail, b.GuestPhone),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de estadía.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Habitación", 4, align.Left),
		h("Check-in", 2, align.Center),
		h("Check-out", 2, align.Center),
		h("Noches", 1, align.Center),
		h("Hab.", 1, align.Center),
		h("Tarifa/noche", 2, align.Right),
	)
}

// stayRow: la línea de la estadía reservada.
func stayRow(data appbooking.ReceiptData) core.Row {
	b := data.Booking
	return row.New(7).Add(
		col.New(4).Add(text.New(b.RoomType, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(b.CheckIn.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(b.CheckOut.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", data.Quote.Nights), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", b.Rooms), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(dto.FormatNPR(data.NightlyRate), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(data appbooking.ReceiptData) core.Row {
	q := data.Quote
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64, right float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: right, Top: top,
		})
	}

	return row.New(30).Add(
		col.New(3),
		col.New(4).Add(
			label(fmt.Sprintf("Habitación (%d noches):", q.Nights), 1),
			label("Servicio (10%):", 7),
			label("IVA (13%):", 13),
			grand("TOTAL:", 21, 2),
		),
		col.New(3).Add(
			value(dto.FormatNPR(q.RoomSubtotal), 1),
			value(dto.FormatNPR(q.ServiceCharge), 7),
			value(dto.FormatNPR(q.Tax), 13),
			grand(dto.FormatNPR(q.Total), 21, 1),
		),
		col.New(2),
	)
}

// footerRows: transaction id del pago simulado + QR + leyenda de demo.
func footerRows(data appbooking.ReceiptData) []core.Row {
	b := data.Booking
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("INFORMACIÓN DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	if b.TransactionID != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Transaction ID: "+b.TransactionID, props.Text{
				Style: fontstyle.Bold, Size: 7, Top: 1,
			}),
		)))
		rows = append(rows, row.New(40).Add(
			col.New(4).Add(code.NewQr(b.ID+"|"+b.TransactionID, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Presenta este código QR en el check-in.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
			),
		))
	} else {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Reserva pendiente de pago", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center,
				Color: colorGray, Top: 2,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este comprobante pertenece a una demo: el pago es simulado y no "+
				"constituye una transacción real.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}
