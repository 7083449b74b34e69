// Package promo renders the home-screen boost widget and builds the link
// that hands the chosen amount over to the calculator.
package promo

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
)

// DefaultAmount is preselected when the widget opens.
const DefaultAmount int64 = 100

// AmountParam is the query parameter carrying the amount to the calculator.
const AmountParam = "amount"

// CalculatorPath is the hand-off target.
const CalculatorPath = "/calculator"

// View is the rendered widget.
type View struct {
	Title           string
	Options         []int64
	SelectedAmount  int64
	From            string
	To              string
	RegularAmount   decimal.Decimal
	BoostedAmount   decimal.Decimal
	ExtraAmount     int64
	BonusDigits     []string
	CalculatorLink  string
	RateFallback    bool
	BoostMultiplier decimal.Decimal
}

// Widget prices the boost banner for a fixed corridor.
type Widget struct {
	rates      engine.RateTable
	multiplier decimal.Decimal
	from       string
	to         string
}

// NewWidget creates the USD->MXN widget.
func NewWidget(rates engine.RateTable, multiplier decimal.Decimal) *Widget {
	return &Widget{
		rates:      rates,
		multiplier: multiplier,
		from:       catalog.DefaultFromCurrency,
		to:         catalog.DefaultToCurrency,
	}
}

// Render builds the view for amount. Amounts outside the quick-pick options
// fall back to DefaultAmount.
func (w *Widget) Render(amount int64) View {
	if !isOption(amount) {
		amount = DefaultAmount
	}

	q := engine.Quote(engine.QuoteInput{
		Amount:          decimal.NewFromInt(amount),
		From:            w.from,
		To:              w.to,
		BoostMultiplier: w.multiplier,
	}, w.rates)

	return View{
		Title:           fmt.Sprintf("Send %d %s", amount, w.from),
		Options:         catalog.RecommendedAmounts(),
		SelectedAmount:  amount,
		From:            w.from,
		To:              w.to,
		RegularAmount:   q.RegularReceiveAmount,
		BoostedAmount:   q.BoostedReceiveAmount,
		ExtraAmount:     q.ExtraAmount,
		BonusDigits:     Digits(q.ExtraAmount),
		CalculatorLink:  CalculatorLink(amount),
		RateFallback:    q.RateFallback,
		BoostMultiplier: q.BoostMultiplier,
	}
}

// CalculatorLink encodes amount as the calculator's query parameter.
func CalculatorLink(amount int64) string {
	v := url.Values{}
	v.Set(AmountParam, strconv.FormatInt(amount, 10))
	return CalculatorPath + "?" + v.Encode()
}

// ParseAmountParam reads the hand-off parameter. Missing or non-numeric
// values yield def.
func ParseAmountParam(raw string, def decimal.Decimal) decimal.Decimal {
	if raw == "" {
		return def
	}
	if _, err := decimal.NewFromString(raw); err != nil {
		return def
	}
	return engine.ParseAmount(raw)
}

// Digits splits n into the digits the flip counter animates.
func Digits(n int64) []string {
	s := strconv.FormatInt(n, 10)
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func isOption(amount int64) bool {
	for _, o := range catalog.RecommendedAmounts() {
		if o == amount {
			return true
		}
	}
	return false
}
