package models

// CalculatorState represents the calculator screen state
// swagger:model CalculatorState
type CalculatorState struct {
	Amount         float64 `json:"amount" example:"100"`
	ReceiveAmount  float64 `json:"receive_amount" example:"2038"`
	FromCurrency   string  `json:"from_currency" example:"USD"`
	ToCurrency     string  `json:"to_currency" example:"MXN"`
	DeliveryMethod string  `json:"delivery_method" example:"bank"`
	PaymentMethod  string  `json:"payment_method" example:"debit"`
	LastEdited     string  `json:"last_edited" example:"send"`
}

// CalculatorEvent represents a user action on the calculator
// swagger:model CalculatorEvent
type CalculatorEvent struct {
	// Event type, e.g. amount_entered, receive_amount_entered, to_currency_selected
	// required: true
	// example: amount_entered
	Type string `json:"type"`

	// Raw value: typed amount, currency code or method id
	// example: 500
	Value string `json:"value,omitempty"`
}

// CalculatorEventRequest represents the JSON body for reducing an event
// swagger:model CalculatorEventRequest
type CalculatorEventRequest struct {
	State CalculatorState `json:"state"`
	Event CalculatorEvent `json:"event"`
}

// CalculatorSummary represents the summary panel
// swagger:model CalculatorSummary
type CalculatorSummary struct {
	Quote              QuoteResponse          `json:"quote"`
	FromCurrency       CurrencyResponse       `json:"from_currency"`
	ToCurrency         CurrencyResponse       `json:"to_currency"`
	DeliveryMethod     DeliveryMethodResponse `json:"delivery_method"`
	PaymentMethod      PaymentMethodResponse  `json:"payment_method"`
	RecommendedAmounts []int64                `json:"recommended_amounts"`
}

// CalculatorResponse represents the state after an event, with its summary
// swagger:model CalculatorResponse
type CalculatorResponse struct {
	State   CalculatorState   `json:"state"`
	Summary CalculatorSummary `json:"summary"`
}
