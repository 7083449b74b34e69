package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-remittance/internal/calculator"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/promo"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=calculator.go -destination=mock_calculator.go -package=handlers

// CalculatorSession drives the calculator reducer.
type CalculatorSession interface {
	Initial(ctx context.Context, amount decimal.Decimal) (calculator.State, calculator.Summary)
	Reduce(ctx context.Context, state calculator.State, e calculator.Event) (calculator.State, calculator.Summary)
}

// NewCalculatorHandler opens the calculator.
// @Summary Open the calculator
// @Description Returns the initial calculator state, preloaded with the amount handed over by the promo widget.
// @Tags calculator
// @Produce json
// @Param amount query number false "Send amount" default(0)
// @Success 200 {object} models.CalculatorResponse
// @Router /calculator [get]
func NewCalculatorHandler(session CalculatorSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount := promo.ParseAmountParam(r.URL.Query().Get(promo.AmountParam), decimal.Zero)

		state, summary := session.Initial(r.Context(), amount)

		writeJSON(w, http.StatusOK, toCalculatorResponse(state, summary))
	}
}

// NewCalculatorEventHandler applies one user action to a calculator state.
// @Summary Apply a calculator event
// @Description Reduces (state, event) to the next state. Unknown currencies, methods and event types leave the state unchanged.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body models.CalculatorEventRequest true "State and event"
// @Success 200 {object} models.CalculatorResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /calculator/events [post]
func NewCalculatorEventHandler(session CalculatorSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CalculatorEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Event.Type == "" {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		state, summary := session.Reduce(r.Context(), fromCalculatorState(req.State), calculator.Event{
			Type:  calculator.EventType(req.Event.Type),
			Value: req.Event.Value,
		})

		writeJSON(w, http.StatusOK, toCalculatorResponse(state, summary))
	}
}
