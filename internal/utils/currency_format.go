package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount as an Indonesian Rupiah display string with
// zero fraction digits, e.g. 1234567.80 -> "Rp1.234.568". Display only, never
// a wire format.
func FormatIDR(amount decimal.Decimal) string {
	v, _ := amount.Round(0).Float64()
	return idPrinter.Sprintf("Rp%v", number.Decimal(v, number.MaxFractionDigits(0)))
}
