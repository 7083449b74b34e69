package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knownCurrency(code string) bool {
	_, ok := catalog.FindCurrency(code)
	return ok
}

func TestTransferService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	senderID, recipientID := uuid.New(), uuid.New()

	recipientsRepo := NewMockRecipientGetter(ctrl)
	recipientsRepo.EXPECT().GetByID(ctx, senderID, recipientID).Return(&models.RecipientDB{RecipientID: recipientID}, nil)

	var published models.TransferIntent
	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		assert.Equal(t, senderID.String(), string(msgs[0].Key))
		return json.Unmarshal(msgs[0].Value, &published)
	})

	svc := NewTransferService(newStaticQuoteService(), recipientsRepo, writer, knownCurrency)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	intent, q, err := svc.Submit(ctx, senderID, recipientID, QuoteParams{
		From:           "USD",
		To:             "MXN",
		Amount:         decimal.NewFromInt(100),
		PaymentMethod:  "debit",
		DeliveryMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, intent, published)
	assert.Equal(t, "2038", intent.RegularReceiveAmount)
	assert.Equal(t, "100.99", intent.TotalToPay)
	assert.Equal(t, "0.99", intent.Fee)
	assert.Equal(t, "cash", intent.DeliveryMethod)
	assert.Equal(t, int64(370), intent.ExtraAmount)
	assert.Equal(t, fixed.Unix(), intent.Timestamp)
	assert.True(t, q.TotalToPay.Equal(decimal.RequireFromString("100.99")))

	id, err := ulid.Parse(intent.IntentID)
	require.NoError(t, err)
	assert.Equal(t, uint64(fixed.UnixMilli()), id.Time())
}

func TestTransferService_SubmitErrors(t *testing.T) {
	ctx := context.Background()
	senderID, recipientID := uuid.New(), uuid.New()
	valid := QuoteParams{From: "USD", To: "MXN", Amount: decimal.NewFromInt(100)}

	tests := []struct {
		name    string
		params  QuoteParams
		setup   func(r *MockRecipientGetter, w *MockKafkaWriter)
		wantErr error
	}{
		{
			name:    "unknown currency",
			params:  QuoteParams{From: "USD", To: "XYZ", Amount: decimal.NewFromInt(1)},
			setup:   func(r *MockRecipientGetter, w *MockKafkaWriter) {},
			wantErr: ErrUnknownCurrency,
		},
		{
			name:    "zero amount",
			params:  QuoteParams{From: "USD", To: "MXN"},
			setup:   func(r *MockRecipientGetter, w *MockKafkaWriter) {},
			wantErr: ErrEmptyTransfer,
		},
		{
			name:   "foreign recipient",
			params: valid,
			setup: func(r *MockRecipientGetter, w *MockKafkaWriter) {
				r.EXPECT().GetByID(ctx, senderID, recipientID).Return(nil, errNotFound)
			},
			wantErr: errNotFound,
		},
		{
			name:   "kafka failure",
			params: valid,
			setup: func(r *MockRecipientGetter, w *MockKafkaWriter) {
				r.EXPECT().GetByID(ctx, senderID, recipientID).Return(&models.RecipientDB{}, nil)
				w.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: ErrTransferNotQueued,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := NewMockRecipientGetter(ctrl)
			w := NewMockKafkaWriter(ctrl)
			tt.setup(r, w)

			_, _, err := NewTransferService(newStaticQuoteService(), r, w, knownCurrency).Submit(ctx, senderID, recipientID, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransferService_SubmitWithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewMockRecipientGetter(ctrl)
	r.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.RecipientDB{}, nil)

	intent, _, err := NewTransferService(newStaticQuoteService(), r, nil, nil).
		Submit(context.Background(), uuid.New(), uuid.New(), QuoteParams{From: "USD", To: "MXN", Amount: decimal.NewFromInt(5)})
	require.NoError(t, err)
	assert.NotEmpty(t, intent.IntentID)
}

func TestTransferService_UsesQuoter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoter := NewMockQuoter(ctrl)
	quoter.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(
		engine.ConversionQuote{From: "USD", To: "MXN", SendAmount: decimal.Zero},
		QuoteParams{From: "USD", To: "MXN"},
	)

	_, _, err := NewTransferService(quoter, NewMockRecipientGetter(ctrl), nil, knownCurrency).
		Submit(context.Background(), uuid.New(), uuid.New(), QuoteParams{})
	assert.ErrorIs(t, err, ErrEmptyTransfer)
}

var errNotFound = errors.New("recipient not found")
