package dto

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var nprPrinter = message.NewPrinter(language.English)

// FormatNPR formatea un monto entero en rupias para mostrar: "Rs. 25,500".
// La demo siempre muestra importes en unidades enteras de moneda.
func FormatNPR(d decimal.Decimal) string {
	return nprPrinter.Sprintf("Rs. %v", number.Decimal(d.IntPart()))
}
