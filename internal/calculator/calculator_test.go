package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCalc() *Calculator {
	return New(catalog.Rates(), decimal.Zero)
}

func TestInitial(t *testing.T) {
	c := newCalc()
	s := c.Initial(d("100"))

	assert.Equal(t, "USD", s.From)
	assert.Equal(t, "MXN", s.To)
	assert.Equal(t, "bank", s.DeliveryMethod)
	assert.Equal(t, "debit", s.PaymentMethod)
	assert.Equal(t, engine.SideSend, s.LastEdited)
	assert.True(t, s.ReceiveAmount.Equal(d("2038")))
}

func TestReduce(t *testing.T) {
	c := newCalc()
	start := c.Initial(d("100"))

	tests := []struct {
		name        string
		event       Event
		wantAmount  string
		wantReceive string
		wantFrom    string
		wantTo      string
		wantSide    engine.Side
	}{
		{
			name:       "amount entered",
			event:      Event{Type: AmountEntered, Value: "500"},
			wantAmount: "500", wantReceive: "10190", wantFrom: "USD", wantTo: "MXN", wantSide: engine.SideSend,
		},
		{
			name:       "invalid amount clamps to zero",
			event:      Event{Type: AmountEntered, Value: "abc"},
			wantAmount: "0", wantReceive: "0", wantFrom: "USD", wantTo: "MXN", wantSide: engine.SideSend,
		},
		{
			name:       "recommended amount",
			event:      Event{Type: RecommendedAmountSelected, Value: "1000"},
			wantAmount: "1000", wantReceive: "20380", wantFrom: "USD", wantTo: "MXN", wantSide: engine.SideSend,
		},
		{
			name:       "receive amount inverts through the regular rate",
			event:      Event{Type: ReceiveAmountEntered, Value: "4076"},
			wantAmount: "200", wantReceive: "4076", wantFrom: "USD", wantTo: "MXN", wantSide: engine.SideReceive,
		},
		{
			name:       "to currency keeps send amount",
			event:      Event{Type: ToCurrencySelected, Value: "inr"},
			wantAmount: "100", wantReceive: "8312", wantFrom: "USD", wantTo: "INR", wantSide: engine.SideSend,
		},
		{
			name:       "unknown currency is ignored",
			event:      Event{Type: ToCurrencySelected, Value: "XYZ"},
			wantAmount: "100", wantReceive: "2038", wantFrom: "USD", wantTo: "MXN", wantSide: engine.SideSend,
		},
		{
			name:       "unsupported pair prices at parity",
			event:      Event{Type: FromCurrencySelected, Value: "EUR"},
			wantAmount: "100", wantReceive: "100", wantFrom: "EUR", wantTo: "MXN", wantSide: engine.SideSend,
		},
		{
			name:       "unknown event is ignored",
			event:      Event{Type: "shake"},
			wantAmount: "100", wantReceive: "2038", wantFrom: "USD", wantTo: "MXN", wantSide: engine.SideSend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := c.Reduce(start, tt.event)

			assert.True(t, next.Amount.Equal(d(tt.wantAmount)), "amount %s", next.Amount)
			assert.True(t, next.ReceiveAmount.Equal(d(tt.wantReceive)), "receive %s", next.ReceiveAmount)
			assert.Equal(t, tt.wantFrom, next.From)
			assert.Equal(t, tt.wantTo, next.To)
			assert.Equal(t, tt.wantSide, next.LastEdited)

			// the previous state is a value and stays as it was
			assert.True(t, start.Amount.Equal(d("100")))
			assert.Equal(t, "MXN", start.To)
		})
	}
}

func TestReduce_CurrencyChangeAfterReceiveEdit(t *testing.T) {
	c := newCalc()
	s := c.Reduce(c.Initial(decimal.Zero), Event{Type: ReceiveAmountEntered, Value: "2038"})
	require.True(t, s.Amount.Equal(d("100")), "amount %s", s.Amount)

	s = c.Reduce(s, Event{Type: ToCurrencySelected, Value: "INR"})

	assert.Equal(t, engine.SideSend, s.LastEdited)
	assert.True(t, s.Amount.Equal(d("100")), "amount %s", s.Amount)
	assert.True(t, s.ReceiveAmount.Equal(d("8312")), "receive %s", s.ReceiveAmount)
}

func TestReduce_SwapAfterReceiveEdit(t *testing.T) {
	c := newCalc()
	s := c.Reduce(c.Initial(decimal.Zero), Event{Type: ReceiveAmountEntered, Value: "2038"})
	s = c.Reduce(s, Event{Type: CurrenciesSwapped})

	assert.Equal(t, engine.SideSend, s.LastEdited)
	assert.Equal(t, "MXN", s.From)
	assert.InDelta(t, 100.0, s.Amount.InexactFloat64(), 1e-9)
}

func TestReduce_Swap(t *testing.T) {
	c := newCalc()
	s := c.Reduce(c.Initial(d("2038")), Event{Type: CurrenciesSwapped})

	assert.Equal(t, "MXN", s.From)
	assert.Equal(t, "USD", s.To)
	assert.InDelta(t, 100.0, s.ReceiveAmount.InexactFloat64(), 1e-9)
}

func TestReduce_Methods(t *testing.T) {
	c := newCalc()
	s := c.Initial(d("100"))

	s = c.Reduce(s, Event{Type: PaymentMethodSelected, Value: "chase"})
	assert.Equal(t, "chase", s.PaymentMethod)

	s = c.Reduce(s, Event{Type: PaymentMethodSelected, Value: "apple-pay"})
	assert.Equal(t, "chase", s.PaymentMethod, "other methods are not selectable")

	s = c.Reduce(s, Event{Type: DeliveryMethodSelected, Value: "cash"})
	assert.Equal(t, "cash", s.DeliveryMethod)

	s = c.Reduce(s, Event{Type: DeliveryMethodSelected, Value: "pigeon"})
	assert.Equal(t, "cash", s.DeliveryMethod)
}

func TestSummarize(t *testing.T) {
	c := newCalc()
	sum := c.Summarize(c.Initial(d("100")))

	assert.True(t, sum.Quote.TotalToPay.Equal(d("100.99")))
	assert.True(t, sum.Quote.BoostedReceiveAmount.Equal(d("2407.897")))
	assert.Equal(t, int64(370), sum.Quote.ExtraAmount)
	assert.Equal(t, "$0.99", sum.FeeLabel)
	assert.Equal(t, "US Dollar", sum.FromCurrency.Name)
	assert.Equal(t, "Mexican Peso", sum.ToCurrency.Name)
	assert.Equal(t, "Bank Transfer", sum.DeliveryMethod.Title)
	assert.Equal(t, "Debit Card", sum.PaymentMethod.Title)

	free := c.Summarize(c.Reduce(c.Initial(d("100")), Event{Type: PaymentMethodSelected, Value: "rusd"}))
	assert.Equal(t, "Free", free.FeeLabel)
	assert.True(t, free.Quote.TotalToPay.Equal(d("100")))
}

func TestNew_CustomMultiplier(t *testing.T) {
	c := New(catalog.Rates(), d("2"))
	sum := c.Summarize(c.Initial(d("10")))
	assert.True(t, sum.Quote.BoostedReceiveAmount.Equal(d("407.6")))
	assert.Equal(t, int64(204), sum.Quote.ExtraAmount)
}
