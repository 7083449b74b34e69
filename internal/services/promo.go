package services

import (
	"context"

	"github.com/sbilibin2017/gw-remittance/internal/promo"
	"github.com/shopspring/decimal"
)

// PromoService renders the boost widget.
type PromoService struct {
	rates      RateTableProvider
	multiplier decimal.Decimal
}

func NewPromoService(rates RateTableProvider, multiplier decimal.Decimal) *PromoService {
	return &PromoService{rates: rates, multiplier: multiplier}
}

// Render prices the widget for amount.
func (s *PromoService) Render(ctx context.Context, amount int64) promo.View {
	return promo.NewWidget(s.rates.Table(ctx), s.multiplier).Render(amount)
}
