package services

import (
	"context"

	"github.com/sbilibin2017/gw-remittance/internal/engine"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=rates.go -destination=mock_rates.go -package=services

// RateReader fetches live rates from the pricing backend.
type RateReader interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// RateCache caches live rates.
type RateCache interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
	SetRate(ctx context.Context, from, to string, rate decimal.Decimal) error
}

// RateTableProvider hands out the rate table to price a request with.
type RateTableProvider interface {
	Table(ctx context.Context) engine.RateTable
}

// RateService resolves pair rates. Without a reader only the static table is used.
type RateService struct {
	static engine.RateTable
	reader RateReader
	cache  RateCache
}

// NewRateService creates a RateService. reader and cache may be nil.
func NewRateService(static engine.RateTable, reader RateReader, cache RateCache) *RateService {
	return &RateService{
		static: static,
		reader: reader,
		cache:  cache,
	}
}

// Rate resolves from->to: cache, then the pricing backend (writing the
// result back to the cache), then the static table.
func (s *RateService) Rate(ctx context.Context, from, to string) (decimal.Decimal, bool) {
	if s.reader == nil {
		return s.staticRate(from, to)
	}

	if s.cache != nil {
		rate, err := s.cache.GetRate(ctx, from, to)
		if err == nil && rate.IsPositive() {
			return rate, true
		}
	}

	rate, err := s.reader.GetRate(ctx, from, to)
	if err != nil || !rate.IsPositive() {
		logger.Log.Warnw("pricing backend unavailable, using static rate", "from", from, "to", to, "error", err)
		return s.staticRate(from, to)
	}

	if s.cache != nil {
		if err := s.cache.SetRate(ctx, from, to, rate); err != nil {
			logger.Log.Errorw("failed to cache rate", "from", from, "to", to, "rate", rate, "error", err)
		}
	}

	return rate, true
}

// Table returns a rate table bound to ctx.
func (s *RateService) Table(ctx context.Context) engine.RateTable {
	if s.reader == nil {
		return s.static
	}
	return ctxRates{ctx: ctx, svc: s}
}

func (s *RateService) staticRate(from, to string) (decimal.Decimal, bool) {
	if s.static == nil {
		return decimal.Zero, false
	}
	return s.static.Rate(from, to)
}

type ctxRates struct {
	ctx context.Context
	svc *RateService
}

func (r ctxRates) Rate(from, to string) (decimal.Decimal, bool) {
	return r.svc.Rate(r.ctx, from, to)
}
