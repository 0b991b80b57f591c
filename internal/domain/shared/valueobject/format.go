package valueobject

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols maps supported currency codes to their display symbols.
var currencySymbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	RUB: "₽",
	AMD: "֏",
}

// formatPrinter renders grouped decimal numbers. A fixed locale keeps
// output deterministic across machines, which golden PDF tests rely on.
var formatPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with its currency symbol, grouped
// integer part and two decimal places, e.g. "$1,234.50". Unknown or
// empty currency codes fall back to USD.
func FormatAmount(amount decimal.Decimal, currency Currency) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currencySymbols[DefaultCurrency]
	}

	f, exact := amount.Round(2).Float64()
	if !exact && f == 0 && !amount.IsZero() {
		// Out of float64 range; fall back to a plain fixed-point string.
		return amount.StringFixed(2)
	}

	return symbol + formatPrinter.Sprint(number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Format renders the Money for display using FormatAmount
func (m Money) Format() string {
	return FormatAmount(m.amount, m.currency)
}
