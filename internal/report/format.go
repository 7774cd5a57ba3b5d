package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatBRL formats a price as Brazilian reais ("R$ 1.234,56")
func FormatBRL(v float64) string {
	return message.NewPrinter(language.BrazilianPortuguese).Sprintf("R$ %.2f", v)
}
