package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter converts source-currency amounts into the display currency
// and renders them with locale digit grouping. Rounding to the nearest
// whole display-currency unit happens at format time, never earlier, so
// the rounding error of one field can't leak into another.
type Formatter struct {
	rate    float64
	printer *message.Printer
}

func NewFormatter(rate float64, locale language.Tag) *Formatter {
	return &Formatter{
		rate:    SafeRate(rate),
		printer: message.NewPrinter(locale),
	}
}

// Rate returns the validated exchange rate the formatter was built with.
func (f *Formatter) Rate() float64 {
	return f.rate
}

// Convert returns the unrounded display-currency amount.
func (f *Formatter) Convert(amount float64) float64 {
	return SafePrice(amount) * f.rate
}

// Format converts, rounds to the nearest whole unit, and groups digits.
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprintf("%d", int64(math.Round(f.Convert(amount))))
}
