package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-remittance/internal/engine"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/services"
)

//go:generate mockgen -source=quote.go -destination=mock_quote.go -package=handlers

// Quoter prices a transfer.
type Quoter interface {
	Quote(ctx context.Context, p services.QuoteParams) (engine.ConversionQuote, services.QuoteParams)
}

// NewQuoteHandler prices a transfer from either side.
// @Summary Quote a transfer
// @Description Prices a send- or receive-side amount. Unsupported pairs are priced at parity and carry a warning.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body models.QuoteRequest true "Quote request"
// @Success 200 {object} models.QuoteResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /quotes [post]
func NewQuoteHandler(quoter Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		if strings.TrimSpace(req.FromCurrency) == "" || strings.TrimSpace(req.ToCurrency) == "" {
			writeError(w, http.StatusBadRequest, "from_currency and to_currency are required")
			return
		}

		q, p := quoter.Quote(r.Context(), toQuoteParams(req))

		writeJSON(w, http.StatusOK, toQuoteResponse(q, p))
	}
}
