package report

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// idPrinter renders numbers with Indonesian digit grouping (dots as
// thousands separators).
var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount as Indonesian Rupiah with zero fractional
// digits, e.g. 500000 -> "Rp 500.000". Malformed amounts render as Rp 0.
func FormatIDR(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return idPrinter.Sprintf("Rp %v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// FormatDate renders a timestamp as the Indonesian short date, dd/mm/yyyy.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
