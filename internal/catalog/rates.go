package catalog

import "github.com/shopspring/decimal"

// Pair is an ordered currency pair.
type Pair struct {
	From string
	To   string
}

// RateTable maps ordered pairs to positive rates. It satisfies engine.RateTable.
type RateTable map[Pair]decimal.Decimal

// Rate returns the rate for from->to and whether the table has it.
func (t RateTable) Rate(from, to string) (decimal.Decimal, bool) {
	rate, ok := t[Pair{From: from, To: to}]
	return rate, ok
}

var one = decimal.NewFromInt(1)

var staticRates = RateTable{
	{"USD", "MXN"}: decimal.RequireFromString("20.38"),
	{"USD", "INR"}: decimal.RequireFromString("83.12"),
	{"USD", "PHP"}: decimal.RequireFromString("56.50"),
	{"USD", "CNY"}: decimal.RequireFromString("7.24"),
	{"USD", "VND"}: decimal.RequireFromString("24565"),
	{"USD", "PKR"}: decimal.RequireFromString("278.95"),
	{"USD", "BDT"}: decimal.RequireFromString("109.82"),
	{"USD", "NGN"}: decimal.RequireFromString("1562.45"),
	{"USD", "EGP"}: decimal.RequireFromString("30.90"),
	{"USD", "GBP"}: decimal.RequireFromString("0.79"),
	{"USD", "EUR"}: decimal.RequireFromString("0.92"),
	{"USD", "CAD"}: decimal.RequireFromString("1.35"),
	{"USD", "AUD"}: decimal.RequireFromString("1.52"),
	{"USD", "BRL"}: decimal.RequireFromString("4.97"),
	{"USD", "IDR"}: decimal.RequireFromString("15682"),
	{"USD", "LKR"}: decimal.RequireFromString("313.89"),
	{"USD", "NPR"}: decimal.RequireFromString("133.29"),
	{"USD", "KRW"}: decimal.RequireFromString("1338.24"),
	{"USD", "THB"}: decimal.RequireFromString("35.97"),
	{"MXN", "USD"}: one.Div(decimal.RequireFromString("20.38")),
	{"INR", "USD"}: one.Div(decimal.RequireFromString("83.12")),
}

// Rates returns a copy of the static exchange-rate table.
func Rates() RateTable {
	out := make(RateTable, len(staticRates))
	for pair, rate := range staticRates {
		out[pair] = rate
	}
	return out
}
