package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-remittance/internal/promo"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=promo.go -destination=mock_promo.go -package=handlers

// PromoRenderer renders the boost widget.
type PromoRenderer interface {
	Render(ctx context.Context, amount int64) promo.View
}

// NewPromoHandler serves the home-screen boost widget.
// @Summary Promo boost widget
// @Description Prices the USD to MXN boost banner. Amounts other than 100, 500, 1000 or 2000 select 100.
// @Tags promo
// @Produce json
// @Param amount query int false "Selected amount" default(100)
// @Success 200 {object} models.PromoResponse
// @Router /promo [get]
func NewPromoHandler(renderer PromoRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount := promo.ParseAmountParam(r.URL.Query().Get(promo.AmountParam), decimal.NewFromInt(promo.DefaultAmount))

		view := renderer.Render(r.Context(), amount.IntPart())

		writeJSON(w, http.StatusOK, toPromoResponse(view))
	}
}
