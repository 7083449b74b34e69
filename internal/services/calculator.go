package services

import (
	"context"

	"github.com/sbilibin2017/gw-remittance/internal/calculator"
	"github.com/shopspring/decimal"
)

// CalculatorService runs calculator sessions against live rates.
type CalculatorService struct {
	rates      RateTableProvider
	multiplier decimal.Decimal
}

func NewCalculatorService(rates RateTableProvider, multiplier decimal.Decimal) *CalculatorService {
	return &CalculatorService{rates: rates, multiplier: multiplier}
}

// Initial opens a session preloaded with amount.
func (s *CalculatorService) Initial(ctx context.Context, amount decimal.Decimal) (calculator.State, calculator.Summary) {
	calc := s.calculator(ctx)
	state := calc.Initial(amount)
	return state, calc.Summarize(state)
}

// Reduce applies e to state.
func (s *CalculatorService) Reduce(ctx context.Context, state calculator.State, e calculator.Event) (calculator.State, calculator.Summary) {
	calc := s.calculator(ctx)
	next := calc.Reduce(state, e)
	return next, calc.Summarize(next)
}

func (s *CalculatorService) calculator(ctx context.Context) *calculator.Calculator {
	return calculator.New(s.rates.Table(ctx), s.multiplier)
}
