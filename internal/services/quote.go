package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/shopspring/decimal"
)

// QuoteParams are the calculator inputs that determine a price.
type QuoteParams struct {
	From           string
	To             string
	Amount         decimal.Decimal
	Side           engine.Side
	PaymentMethod  string
	DeliveryMethod string
}

// QuoteService prices transfers.
type QuoteService struct {
	rates      RateTableProvider
	multiplier decimal.Decimal
}

// NewQuoteService creates a QuoteService. A non-positive multiplier selects the default boost.
func NewQuoteService(rates RateTableProvider, multiplier decimal.Decimal) *QuoteService {
	if !multiplier.IsPositive() {
		multiplier = engine.DefaultBoostMultiplier
	}
	return &QuoteService{rates: rates, multiplier: multiplier}
}

// Quote prices p. Empty method ids select the catalog defaults, unknown or
// non-selectable ids resolve to the first selectable entry, and the returned
// params carry the ids the quote was priced with.
func (s *QuoteService) Quote(ctx context.Context, p QuoteParams) (engine.ConversionQuote, QuoteParams) {
	p.From = strings.ToUpper(strings.TrimSpace(p.From))
	p.To = strings.ToUpper(strings.TrimSpace(p.To))
	if p.PaymentMethod == "" {
		p.PaymentMethod = catalog.DefaultPaymentMethod
	} else {
		p.PaymentMethod = catalog.PaymentMethodOrDefault(p.PaymentMethod).ID
	}
	p.DeliveryMethod = catalog.DeliveryMethodOrDefault(p.DeliveryMethod).ID

	q := engine.Quote(engine.QuoteInput{
		Amount:          p.Amount,
		Side:            p.Side,
		From:            p.From,
		To:              p.To,
		BoostMultiplier: s.multiplier,
		Fee:             catalog.PaymentFee(p.PaymentMethod),
	}, s.rates.Table(ctx))

	if err := q.Warning(); err != nil {
		logger.Log.Warnw("quote priced at parity", "from", p.From, "to", p.To, "error", err)
	}

	return q, p
}
