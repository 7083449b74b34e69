package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/repositories"
	"github.com/sbilibin2017/gw-remittance/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderID, recipientID := uuid.New(), uuid.New()
	tokener := authorizedTokener(ctrl, senderID)

	body, _ := json.Marshal(models.TransferRequest{
		RecipientID: recipientID.String(),
		Quote:       models.QuoteRequest{FromCurrency: "USD", ToCurrency: "MXN", Amount: 100, PaymentMethod: "debit", DeliveryMethod: "cash"},
	})

	quote := staticQuote(engine.QuoteInput{Amount: decimal.NewFromInt(100), From: "USD", To: "MXN", Fee: decimal.RequireFromString("0.99")})

	tests := []struct {
		name         string
		body         []byte
		mockSetup    func(m *MockTransferSubmitter)
		expectedCode int
	}{
		{
			name: "accepted",
			body: body,
			mockSetup: func(m *MockTransferSubmitter) {
				m.EXPECT().Submit(gomock.Any(), senderID, recipientID, gomock.Any()).
					DoAndReturn(func(_ any, _, _ uuid.UUID, p services.QuoteParams) (models.TransferIntent, engine.ConversionQuote, error) {
						assert.Equal(t, "cash", p.DeliveryMethod)
						assert.True(t, p.Amount.Equal(decimal.NewFromInt(100)))
						return models.TransferIntent{IntentID: "01J9ZQ4X3W6Y7V2K8M5N4P3R2S", DeliveryMethod: "cash", PaymentMethod: "debit"}, quote, nil
					})
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "zero amount",
			body: body,
			mockSetup: func(m *MockTransferSubmitter) {
				m.EXPECT().Submit(gomock.Any(), senderID, recipientID, gomock.Any()).Return(models.TransferIntent{}, engine.ConversionQuote{}, services.ErrEmptyTransfer)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "recipient of another sender",
			body: body,
			mockSetup: func(m *MockTransferSubmitter) {
				m.EXPECT().Submit(gomock.Any(), senderID, recipientID, gomock.Any()).Return(models.TransferIntent{}, engine.ConversionQuote{}, repositories.ErrRecipientNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "broker down",
			body: body,
			mockSetup: func(m *MockTransferSubmitter) {
				m.EXPECT().Submit(gomock.Any(), senderID, recipientID, gomock.Any()).
					Return(models.TransferIntent{}, engine.ConversionQuote{}, errors.Join(services.ErrTransferNotQueued, errors.New("dial tcp")))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name: "unexpected failure",
			body: body,
			mockSetup: func(m *MockTransferSubmitter) {
				m.EXPECT().Submit(gomock.Any(), senderID, recipientID, gomock.Any()).Return(models.TransferIntent{}, engine.ConversionQuote{}, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "bad recipient id",
			body:         []byte(`{"recipient_id":"andrew","quote":{"from_currency":"USD","to_currency":"MXN","amount":1}}`),
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         []byte(`{`),
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockTransferSubmitter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			rec := httptest.NewRecorder()
			NewTransferHandler(tokener, m).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(tt.body)))
			require.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusAccepted {
				var got models.TransferResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "Transfer submitted", got.Message)
				assert.Equal(t, "01J9ZQ4X3W6Y7V2K8M5N4P3R2S", got.IntentID)
				assert.Equal(t, 100.99, got.Quote.TotalToPay)
				assert.Equal(t, "cash", got.Quote.DeliveryMethod)
			}
		})
	}
}

func TestTransferHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	NewTransferHandler(unauthorizedTokener(ctrl), NewMockTransferSubmitter(ctrl)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewBufferString(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
