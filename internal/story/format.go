package story

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting. English
// locale keeps thousand separators consistent across environments.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatTons renders an emission magnitude with two decimals and thousand
// separators, e.g. "1,234.57".
func FormatTons(v float64) string {
	rounded := math.Round(v*100) / 100
	intPart := int64(rounded)
	frac := math.Abs(rounded - float64(intPart))
	return printer.Sprintf("%d", intPart) + fmt.Sprintf("%.2f", frac)[1:]
}
