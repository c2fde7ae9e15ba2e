package money

// DefaultCurrency is used when an amount is given without a currency.
const DefaultCurrency = "TRY"

// Currency codes with a known display symbol.
const (
	TRY = "TRY"
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
)

var symbols = map[string]string{
	TRY: "₺",
	USD: "$",
	EUR: "€",
	GBP: "£",
}

// SymbolOf returns the display symbol of the currency code.
// Codes without a known symbol are returned unchanged.
func SymbolOf(currencyCode string) string {
	if s, ok := symbols[currencyCode]; ok {
		return s
	}

	return currencyCode
}
