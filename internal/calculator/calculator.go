// Package calculator models the send-money calculator as an immutable state
// and a reducer: every user action is an Event, and Reduce returns the next
// State without touching the previous one.
package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
)

// EventType enumerates calculator actions.
type EventType string

const (
	AmountEntered             EventType = "amount_entered"
	ReceiveAmountEntered      EventType = "receive_amount_entered"
	RecommendedAmountSelected EventType = "recommended_amount_selected"
	FromCurrencySelected      EventType = "from_currency_selected"
	ToCurrencySelected        EventType = "to_currency_selected"
	CurrenciesSwapped         EventType = "currencies_swapped"
	DeliveryMethodSelected    EventType = "delivery_method_selected"
	PaymentMethodSelected     EventType = "payment_method_selected"
)

// Event is a single user action. Value carries the raw input: an amount as
// typed, a currency code or a method id.
type Event struct {
	Type  EventType `json:"type"`
	Value string    `json:"value,omitempty"`
}

// State is the calculator screen state. Amount and ReceiveAmount are always
// kept in sync through the regular rate; LastEdited records which of them
// drives the computation.
type State struct {
	Amount         decimal.Decimal
	ReceiveAmount  decimal.Decimal
	From           string
	To             string
	DeliveryMethod string
	PaymentMethod  string
	LastEdited     engine.Side
}

// Summary is everything the summary panel renders for a State.
type Summary struct {
	Quote          engine.ConversionQuote
	FromCurrency   catalog.Currency
	ToCurrency     catalog.Currency
	DeliveryMethod catalog.DeliveryMethod
	PaymentMethod  catalog.PaymentMethod
	FeeLabel       string
}

// Calculator binds the reducer to a rate table and boost multiplier.
type Calculator struct {
	rates      engine.RateTable
	multiplier decimal.Decimal
}

// New creates a Calculator. A non-positive multiplier selects the default boost.
func New(rates engine.RateTable, multiplier decimal.Decimal) *Calculator {
	if !multiplier.IsPositive() {
		multiplier = engine.DefaultBoostMultiplier
	}
	return &Calculator{rates: rates, multiplier: multiplier}
}

// Initial returns the state the calculator screen opens with.
func (c *Calculator) Initial(amount decimal.Decimal) State {
	return c.sync(State{
		Amount:         amount,
		From:           catalog.DefaultFromCurrency,
		To:             catalog.DefaultToCurrency,
		DeliveryMethod: catalog.DefaultDeliveryMethod,
		PaymentMethod:  catalog.DefaultPaymentMethod,
		LastEdited:     engine.SideSend,
	})
}

// Reduce applies e to s. Events naming unknown currencies or methods, and
// unknown event types, return s unchanged. A currency change keeps the send
// amount and reprices the receive amount.
func (c *Calculator) Reduce(s State, e Event) State {
	value := strings.TrimSpace(e.Value)

	switch e.Type {
	case AmountEntered:
		s.Amount = engine.ParseAmount(value)
		s.LastEdited = engine.SideSend
	case RecommendedAmountSelected:
		s.Amount = engine.ParseAmount(value)
		s.LastEdited = engine.SideSend
	case ReceiveAmountEntered:
		s.ReceiveAmount = engine.ParseAmount(value)
		s.LastEdited = engine.SideReceive
	case FromCurrencySelected:
		if _, ok := catalog.FindCurrency(strings.ToUpper(value)); !ok {
			return s
		}
		s.From = strings.ToUpper(value)
		s.LastEdited = engine.SideSend
	case ToCurrencySelected:
		if _, ok := catalog.FindCurrency(strings.ToUpper(value)); !ok {
			return s
		}
		s.To = strings.ToUpper(value)
		s.LastEdited = engine.SideSend
	case CurrenciesSwapped:
		s.From, s.To = s.To, s.From
		s.LastEdited = engine.SideSend
	case DeliveryMethodSelected:
		if _, ok := catalog.FindDeliveryMethod(value); !ok {
			return s
		}
		s.DeliveryMethod = value
		return s
	case PaymentMethodSelected:
		if _, ok := catalog.FindPaymentMethod(value); !ok {
			return s
		}
		s.PaymentMethod = value
		return s
	default:
		return s
	}

	return c.sync(s)
}

// Summarize prices s and resolves its catalog entries.
func (c *Calculator) Summarize(s State) Summary {
	q := c.quote(s)
	from, _ := catalog.FindCurrency(s.From)
	to, _ := catalog.FindCurrency(s.To)

	return Summary{
		Quote:          q,
		FromCurrency:   from,
		ToCurrency:     to,
		DeliveryMethod: catalog.DeliveryMethodOrDefault(s.DeliveryMethod),
		PaymentMethod:  catalog.PaymentMethodOrDefault(s.PaymentMethod),
		FeeLabel:       catalog.FeeLabel(q.Fee),
	}
}

// sync recomputes the field that was not edited last.
func (c *Calculator) sync(s State) State {
	q := c.quote(s)
	s.Amount = q.SendAmount
	s.ReceiveAmount = q.RegularReceiveAmount
	return s
}

func (c *Calculator) quote(s State) engine.ConversionQuote {
	amount := s.Amount
	if s.LastEdited == engine.SideReceive {
		amount = s.ReceiveAmount
	}
	return engine.Quote(engine.QuoteInput{
		Amount:          amount,
		Side:            s.LastEdited,
		From:            s.From,
		To:              s.To,
		BoostMultiplier: c.multiplier,
		Fee:             catalog.PaymentFee(s.PaymentMethod),
	}, c.rates)
}
