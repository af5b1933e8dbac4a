package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Símbolos de moneda soportados para formateo de despliegue.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"COP": "$",
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Format devuelve el monto con símbolo y separador de miles, dos decimales.
// Ej: Format(decimal 45680, "USD") -> "$45,680.00".
func Format(amount decimal.Decimal, currency string) string {
	symbol, ok := symbols[currency]
	if !ok {
		symbol = currency + " "
	}
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("%s%.2f", symbol, f)
}
