package handlers

import (
	"strings"

	"github.com/sbilibin2017/gw-remittance/internal/calculator"
	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/promo"
	"github.com/sbilibin2017/gw-remittance/internal/recipients"
	"github.com/sbilibin2017/gw-remittance/internal/services"
)

func toQuoteResponse(q engine.ConversionQuote, p services.QuoteParams) models.QuoteResponse {
	resp := models.QuoteResponse{
		FromCurrency:         q.From,
		ToCurrency:           q.To,
		Rate:                 q.Rate.InexactFloat64(),
		BoostMultiplier:      q.BoostMultiplier.InexactFloat64(),
		SendAmount:           q.SendAmount.InexactFloat64(),
		Fee:                  q.Fee.InexactFloat64(),
		FeeLabel:             catalog.FeeLabel(q.Fee),
		TotalToPay:           q.TotalToPay.InexactFloat64(),
		RegularReceiveAmount: q.RegularReceiveAmount.InexactFloat64(),
		BoostedReceiveAmount: q.BoostedReceiveAmount.InexactFloat64(),
		ExtraAmount:          q.ExtraAmount,
		DeliveryMethod:       p.DeliveryMethod,
		PaymentMethod:        p.PaymentMethod,
	}
	if err := q.Warning(); err != nil {
		resp.Warnings = []string{err.Error()}
	}
	return resp
}

func toCurrencyResponse(c catalog.Currency) models.CurrencyResponse {
	return models.CurrencyResponse{
		Code:    c.Code,
		Name:    c.Name,
		Symbol:  c.Symbol,
		Flag:    c.Flag,
		Aliases: c.Aliases,
	}
}

func toDeliveryMethodResponse(m catalog.DeliveryMethod) models.DeliveryMethodResponse {
	return models.DeliveryMethodResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ETA:         m.ETA,
		Fee:         m.Fee.InexactFloat64(),
	}
}

func toPaymentMethodResponse(m catalog.PaymentMethod) models.PaymentMethodResponse {
	return models.PaymentMethodResponse{
		ID:          m.ID,
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		Description: m.Description,
		Fee:         m.Fee.InexactFloat64(),
		FeeLabel:    catalog.FeeLabel(m.Fee),
		Selectable:  m.Selectable,
	}
}

func toPromoResponse(v promo.View) models.PromoResponse {
	resp := models.PromoResponse{
		Title:           v.Title,
		Options:         v.Options,
		SelectedAmount:  v.SelectedAmount,
		FromCurrency:    v.From,
		ToCurrency:      v.To,
		RegularAmount:   v.RegularAmount.InexactFloat64(),
		BoostedAmount:   v.BoostedAmount.InexactFloat64(),
		ExtraAmount:     v.ExtraAmount,
		BonusDigits:     v.BonusDigits,
		BoostMultiplier: v.BoostMultiplier.InexactFloat64(),
		CalculatorLink:  v.CalculatorLink,
	}
	if v.RateFallback {
		resp.Warnings = []string{(&engine.UnsupportedPairError{From: v.From, To: v.To}).Error()}
	}
	return resp
}

func toCalculatorState(s calculator.State) models.CalculatorState {
	return models.CalculatorState{
		Amount:         s.Amount.InexactFloat64(),
		ReceiveAmount:  s.ReceiveAmount.InexactFloat64(),
		FromCurrency:   s.From,
		ToCurrency:     s.To,
		DeliveryMethod: s.DeliveryMethod,
		PaymentMethod:  s.PaymentMethod,
		LastEdited:     string(s.LastEdited),
	}
}

func fromCalculatorState(s models.CalculatorState) calculator.State {
	return calculator.State{
		Amount:         engine.FromFloat(s.Amount),
		ReceiveAmount:  engine.FromFloat(s.ReceiveAmount),
		From:           normalizeCurrency(s.FromCurrency, catalog.DefaultFromCurrency),
		To:             normalizeCurrency(s.ToCurrency, catalog.DefaultToCurrency),
		DeliveryMethod: catalog.DeliveryMethodOrDefault(s.DeliveryMethod).ID,
		PaymentMethod:  paymentMethodOrDefault(s.PaymentMethod),
		LastEdited:     engine.ParseSide(s.LastEdited),
	}
}

// normalizeCurrency upper-cases code. Codes outside the catalog resolve to
// fallback.
func normalizeCurrency(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := catalog.FindCurrency(code); !ok {
		return fallback
	}
	return code
}

func paymentMethodOrDefault(id string) string {
	if id == "" {
		return catalog.DefaultPaymentMethod
	}
	return catalog.PaymentMethodOrDefault(id).ID
}

func toCalculatorResponse(s calculator.State, sum calculator.Summary) models.CalculatorResponse {
	return models.CalculatorResponse{
		State: toCalculatorState(s),
		Summary: models.CalculatorSummary{
			Quote: toQuoteResponse(sum.Quote, services.QuoteParams{
				DeliveryMethod: sum.DeliveryMethod.ID,
				PaymentMethod:  s.PaymentMethod,
			}),
			FromCurrency:       toCurrencyResponse(sum.FromCurrency),
			ToCurrency:         toCurrencyResponse(sum.ToCurrency),
			DeliveryMethod:     toDeliveryMethodResponse(sum.DeliveryMethod),
			PaymentMethod:      toPaymentMethodResponse(sum.PaymentMethod),
			RecommendedAmounts: catalog.RecommendedAmounts(),
		},
	}
}

func toRecipientResponse(r recipients.Recipient) models.RecipientResponse {
	return models.RecipientResponse{
		ID:              r.ID,
		Name:            r.Name,
		AccountNumber:   r.AccountNumber,
		Initials:        r.Initials,
		DeliveryMethods: r.DeliveryMethods,
		Country:         r.Country,
		IsSelf:          r.IsSelf,
	}
}

func toQuoteParams(req models.QuoteRequest) services.QuoteParams {
	return services.QuoteParams{
		From:           req.FromCurrency,
		To:             req.ToCurrency,
		Amount:         engine.FromFloat(req.Amount),
		Side:           engine.ParseSide(req.Side),
		PaymentMethod:  req.PaymentMethod,
		DeliveryMethod: req.DeliveryMethod,
	}
}
