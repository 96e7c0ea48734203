// Package currency holds the static display-currency catalog. Currencies drive
// formatting only; amounts are never converted between them.
package currency

import "strings"

// Currency describes one selectable display currency.
type Currency struct {
	Code     string `json:"code"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol,omitempty"`
	Decimals int    `json:"decimals"`
}

var catalog = []Currency{
	{Code: "USD", Number: "840", Name: "US Dollar", Symbol: "$", Decimals: 2},
	{Code: "EUR", Number: "978", Name: "Euro", Symbol: "€", Decimals: 2},
	{Code: "GBP", Number: "826", Name: "British Pound", Symbol: "£", Decimals: 2},
	{Code: "JPY", Number: "392", Name: "Japanese Yen", Symbol: "¥", Decimals: 0},
	{Code: "AUD", Number: "036", Name: "Australian Dollar", Symbol: "A$", Decimals: 2},
	{Code: "CAD", Number: "124", Name: "Canadian Dollar", Symbol: "C$", Decimals: 2},
	{Code: "CHF", Number: "756", Name: "Swiss Franc", Symbol: "Fr", Decimals: 2},
	{Code: "CNY", Number: "156", Name: "Chinese Yuan", Symbol: "¥", Decimals: 2},
	{Code: "INR", Number: "356", Name: "Indian Rupee", Symbol: "₹", Decimals: 2},
	{Code: "BRL", Number: "986", Name: "Brazilian Real", Symbol: "R$", Decimals: 2},
	{Code: "RUB", Number: "643", Name: "Russian Ruble", Symbol: "₽", Decimals: 2},
	{Code: "KRW", Number: "410", Name: "South Korean Won", Symbol: "₩", Decimals: 0},
	{Code: "SGD", Number: "702", Name: "Singapore Dollar", Symbol: "S$", Decimals: 2},
	{Code: "NZD", Number: "554", Name: "New Zealand Dollar", Symbol: "NZ$", Decimals: 2},
	{Code: "MXN", Number: "484", Name: "Mexican Peso", Symbol: "Mex$", Decimals: 2},
	{Code: "HKD", Number: "344", Name: "Hong Kong Dollar", Symbol: "HK$", Decimals: 2},
	{Code: "TRY", Number: "949", Name: "Turkish Lira", Symbol: "₺", Decimals: 2},
	{Code: "SAR", Number: "682", Name: "Saudi Riyal", Symbol: "﷼", Decimals: 2},
	{Code: "SEK", Number: "752", Name: "Swedish Krona", Symbol: "kr", Decimals: 2},
	{Code: "NOK", Number: "578", Name: "Norwegian Krone", Symbol: "kr", Decimals: 2},
	{Code: "DKK", Number: "208", Name: "Danish Krone", Symbol: "kr", Decimals: 2},
	{Code: "PLN", Number: "985", Name: "Polish Złoty", Symbol: "zł", Decimals: 2},
	{Code: "ILS", Number: "376", Name: "Israeli New Shekel", Symbol: "₪", Decimals: 2},
	{Code: "PHP", Number: "608", Name: "Philippine Peso", Symbol: "₱", Decimals: 2},
	{Code: "TWD", Number: "901", Name: "New Taiwan Dollar", Symbol: "NT$", Decimals: 2},
	{Code: "THB", Number: "764", Name: "Thai Baht", Symbol: "฿", Decimals: 2},
	{Code: "IDR", Number: "360", Name: "Indonesian Rupiah", Symbol: "Rp", Decimals: 2},
	{Code: "HUF", Number: "348", Name: "Hungarian Forint", Symbol: "Ft", Decimals: 2},
	{Code: "ZAR", Number: "710", Name: "South African Rand", Symbol: "R", Decimals: 2},
	{Code: "AED", Number: "784", Name: "UAE Dirham", Symbol: "د.إ", Decimals: 2},
	{Code: "NGN", Number: "566", Name: "Nigerian Naira", Symbol: "₦", Decimals: 2},
	{Code: "VND", Number: "704", Name: "Vietnamese Dong", Symbol: "₫", Decimals: 0},
}

// All returns the full catalog in stable order.
func All() []Currency {
	out := make([]Currency, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a currency by ISO code. The zero value and false are returned
// for unknown codes.
func Lookup(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range catalog {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Search returns currencies whose code or name contains the query,
// case-insensitive. An empty query returns the full catalog.
func Search(query string) []Currency {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return All()
	}

	out := make([]Currency, 0, 8)
	for _, c := range catalog {
		if strings.Contains(strings.ToLower(c.Code), query) ||
			strings.Contains(strings.ToLower(c.Name), query) {
			out = append(out, c)
		}
	}
	return out
}
