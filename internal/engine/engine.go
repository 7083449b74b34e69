// Package engine computes remittance conversion quotes: rate lookup,
// promotional boost, extra-amount rounding and send/receive inversion.
//
// All arithmetic runs on decimal.Decimal so that quoted figures are exact
// products of the catalog rates, e.g. 100 * 20.38 is 2038 and not 2038.0000000000002.
package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedCurrencyPair marks a quote priced at parity because no rate
// exists for the pair. The quote is still usable; the condition is a warning.
var ErrUnsupportedCurrencyPair = errors.New("unsupported currency pair")

// DefaultBoostMultiplier is the promotional uplift applied to the regular receive amount.
var DefaultBoostMultiplier = decimal.RequireFromString("1.1815")

var parity = decimal.NewFromInt(1)

// RateTable resolves the rate for an ordered currency pair.
type RateTable interface {
	Rate(from, to string) (decimal.Decimal, bool)
}

// Side names the amount field the user edited last.
type Side string

const (
	SideSend    Side = "send"
	SideReceive Side = "receive"
)

// ParseSide maps free-form input onto a Side, defaulting to SideSend.
func ParseSide(s string) Side {
	if Side(strings.ToLower(strings.TrimSpace(s))) == SideReceive {
		return SideReceive
	}
	return SideSend
}

// QuoteInput is everything needed to price a transfer.
type QuoteInput struct {
	// Amount is the value of the edited field, in From units for SideSend and
	// in To units for SideReceive.
	Amount          decimal.Decimal
	Side            Side
	From            string
	To              string
	BoostMultiplier decimal.Decimal // zero means DefaultBoostMultiplier
	Fee             decimal.Decimal
}

// ConversionQuote is the derived, never persisted result of a quote.
type ConversionQuote struct {
	From                 string
	To                   string
	Rate                 decimal.Decimal
	RateFallback         bool
	BoostMultiplier      decimal.Decimal
	SendAmount           decimal.Decimal
	Fee                  decimal.Decimal
	TotalToPay           decimal.Decimal
	RegularReceiveAmount decimal.Decimal
	BoostedReceiveAmount decimal.Decimal
	ExtraAmount          int64
}

// UnsupportedPairError carries the pair that fell back to parity.
type UnsupportedPairError struct {
	From string
	To   string
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("%s: %s->%s priced at parity", ErrUnsupportedCurrencyPair, e.From, e.To)
}

func (e *UnsupportedPairError) Unwrap() error {
	return ErrUnsupportedCurrencyPair
}

// Warning reports a parity fallback, or nil when the rate came from a table.
func (q ConversionQuote) Warning() error {
	if !q.RateFallback {
		return nil
	}
	return &UnsupportedPairError{From: q.From, To: q.To}
}

// ResolveRate looks the pair up in rates. A missing or non-positive entry
// resolves to parity with ok=false. Identical codes are a genuine 1:1 rate.
func ResolveRate(rates RateTable, from, to string) (rate decimal.Decimal, ok bool) {
	if from == to && from != "" {
		return parity, true
	}
	if rates == nil {
		return parity, false
	}
	rate, ok = rates.Rate(from, to)
	if !ok || !rate.IsPositive() {
		return parity, false
	}
	return rate, true
}

// Quote prices in against rates.
func Quote(in QuoteInput, rates RateTable) ConversionQuote {
	rate, ok := ResolveRate(rates, in.From, in.To)
	return QuoteWithRate(in, rate, !ok)
}

// QuoteWithRate prices in against an already resolved rate. fallback records
// whether rate is the parity substitute for a missing entry.
func QuoteWithRate(in QuoteInput, rate decimal.Decimal, fallback bool) ConversionQuote {
	if !rate.IsPositive() {
		rate, fallback = parity, true
	}
	multiplier := in.BoostMultiplier
	if !multiplier.IsPositive() {
		multiplier = DefaultBoostMultiplier
	}
	amount := nonNegative(in.Amount)
	fee := nonNegative(in.Fee)

	var send, regular decimal.Decimal
	switch in.Side {
	case SideReceive:
		regular = amount
		send = Invert(amount, rate)
	default:
		send = amount
		regular = amount.Mul(rate)
	}

	boosted := regular.Mul(multiplier)

	return ConversionQuote{
		From:                 in.From,
		To:                   in.To,
		Rate:                 rate,
		RateFallback:         fallback,
		BoostMultiplier:      multiplier,
		SendAmount:           send,
		Fee:                  fee,
		TotalToPay:           send.Add(fee),
		RegularReceiveAmount: regular,
		BoostedReceiveAmount: boosted,
		ExtraAmount:          ExtraAmount(regular, boosted),
	}
}

// Invert converts a receive-side amount back to the send side using the
// regular rate. The boost never takes part in inversion.
func Invert(receive, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return receive.Div(rate)
}

// ExtraAmount is the boost uplift rounded half-up to whole target units.
func ExtraAmount(regular, boosted decimal.Decimal) int64 {
	return boosted.Sub(regular).Round(0).IntPart()
}

// ParseAmount coerces raw user input into a non-negative amount.
// Anything unparsable, non-finite or negative becomes zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return nonNegative(d)
}

// FromFloat converts a float amount the same way ParseAmount treats text.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
