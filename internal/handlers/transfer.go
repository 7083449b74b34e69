package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/repositories"
	"github.com/sbilibin2017/gw-remittance/internal/services"
)

//go:generate mockgen -source=transfer.go -destination=mock_transfer.go -package=handlers

// TransferSubmitter publishes transfer intents.
type TransferSubmitter interface {
	Submit(ctx context.Context, senderID, recipientID uuid.UUID, p services.QuoteParams) (models.TransferIntent, engine.ConversionQuote, error)
}

// NewTransferHandler confirms a calculator quote for a recipient.
// @Summary Submit a transfer
// @Description Re-prices the calculator inputs and queues a transfer intent for the chosen recipient.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body models.TransferRequest true "Transfer request"
// @Success 202 {object} models.TransferResponse
// @Failure 400 {object} models.ErrorResponse "Invalid transfer"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Recipient not found"
// @Failure 503 {object} models.ErrorResponse "Transfer could not be queued"
// @Router /transfers [post]
// @Security BearerAuth
func NewTransferHandler(tokener Tokener, svc TransferSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		senderID, err := senderFromRequest(tokener, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req models.TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		recipientID, err := uuid.Parse(req.RecipientID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid recipient_id")
			return
		}

		params := toQuoteParams(req.Quote)
		intent, q, err := svc.Submit(r.Context(), senderID, recipientID, params)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyTransfer), errors.Is(err, services.ErrUnknownCurrency):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, repositories.ErrRecipientNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrTransferNotQueued):
				writeError(w, http.StatusServiceUnavailable, services.ErrTransferNotQueued.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusAccepted, models.TransferResponse{
			Message:  "Transfer submitted",
			IntentID: intent.IntentID,
			Quote: toQuoteResponse(q, services.QuoteParams{
				DeliveryMethod: intent.DeliveryMethod,
				PaymentMethod:  intent.PaymentMethod,
			}),
		})
	}
}
