package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way the storefront displays
// prices, e.g. 35000 -> "Rp35.000". Amounts are whole rupiah.
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp%d", amount)
}
