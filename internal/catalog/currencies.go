// Package catalog holds the static reference data the remittance screens are
// built from: currencies, exchange rates, delivery and payment methods,
// recommended amounts and the starter recipient list.
//
// Every table here is the single source of truth; callers receive copies.
package catalog

import "strings"

// Currency is an immutable entry of the currency selector.
type Currency struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Symbol  string   `json:"symbol"`
	Flag    string   `json:"flag"`
	Aliases []string `json:"aliases,omitempty"`
}

// Matches reports whether term is a case-insensitive substring of the code,
// the name or any alias. An empty term matches everything.
func (c Currency) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Code), term) || strings.Contains(strings.ToLower(c.Name), term) {
		return true
	}
	for _, alias := range c.Aliases {
		if strings.Contains(strings.ToLower(alias), term) {
			return true
		}
	}
	return false
}

var currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Flag: "🇺🇸", Aliases: []string{"dollar", "usd", "american dollar"}},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$", Flag: "🇲🇽", Aliases: []string{"peso", "mxn", "mexican"}},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Flag: "🇮🇳"},
	{Code: "PHP", Name: "Philippine Peso", Symbol: "₱", Flag: "🇵🇭"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Flag: "🇨🇳", Aliases: []string{"rmb", "yuan", "renminbi"}},
	{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫", Flag: "🇻🇳"},
	{Code: "PKR", Name: "Pakistani Rupee", Symbol: "₨", Flag: "🇵🇰"},
	{Code: "BDT", Name: "Bangladeshi Taka", Symbol: "৳", Flag: "🇧🇩"},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦", Flag: "🇳🇬"},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "E£", Flag: "🇪🇬"},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Flag: "🇬🇧"},
	{Code: "EUR", Name: "Euro", Symbol: "€", Flag: "🇪🇺"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "$", Flag: "🇨🇦"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "$", Flag: "🇦🇺"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Flag: "🇧🇷"},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", Flag: "🇮🇩"},
	{Code: "LKR", Name: "Sri Lankan Rupee", Symbol: "Rs", Flag: "🇱🇰"},
	{Code: "NPR", Name: "Nepalese Rupee", Symbol: "रू", Flag: "🇳🇵"},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩", Flag: "🇰🇷"},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿", Flag: "🇹🇭"},
}

// Default send and receive currencies of a fresh calculator.
const (
	DefaultFromCurrency = "USD"
	DefaultToCurrency   = "MXN"
)

// Currencies returns the selector table in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	for i, c := range currencies {
		out[i] = c.clone()
	}
	return out
}

// FindCurrency looks a currency up by its exact code.
func FindCurrency(code string) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c.clone(), true
		}
	}
	return Currency{}, false
}

// SearchCurrencies filters the table the way the selector search box does.
func SearchCurrencies(term string) []Currency {
	out := make([]Currency, 0, len(currencies))
	for _, c := range currencies {
		if c.Matches(term) {
			out = append(out, c.clone())
		}
	}
	return out
}

func (c Currency) clone() Currency {
	if c.Aliases != nil {
		c.Aliases = append([]string(nil), c.Aliases...)
	}
	return c
}
