package facades

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-remittance/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
)

// PricingGRPCFacade reads live rates from the pricing backend over gRPC.
type PricingGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewPricingGRPCFacade creates a new facade with a gRPC client.
func NewPricingGRPCFacade(client pb.ExchangeServiceClient) *PricingGRPCFacade {
	return &PricingGRPCFacade{client: client}
}

// GetRate fetches the from->to rate.
func (f *PricingGRPCFacade) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	resp, err := f.client.GetExchangeRateForCurrency(ctx, &pb.CurrencyRequest{
		FromCurrency: from,
		ToCurrency:   to,
	})
	if err != nil {
		logger.Log.Errorw("failed to fetch rate via gRPC",
			"from", from, "to", to, "error", err)
		return decimal.Zero, err
	}

	rate := decimal.NewFromFloat32(resp.Rate)
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("pricing backend returned non-positive rate %s for %s->%s", rate, from, to)
	}

	return rate, nil
}
