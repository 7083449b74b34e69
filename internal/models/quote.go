package models

// QuoteRequest represents the JSON body for pricing a transfer
// swagger:model QuoteRequest
type QuoteRequest struct {
	// Source currency
	// required: true
	// example: USD
	FromCurrency string `json:"from_currency"`

	// Target currency
	// required: true
	// example: MXN
	ToCurrency string `json:"to_currency"`

	// Value of the edited field
	// example: 100.0
	Amount float64 `json:"amount"`

	// Which field was edited: send or receive
	// example: send
	Side string `json:"side"`

	// Selected payment method id
	// example: debit
	PaymentMethod string `json:"payment_method"`

	// Selected delivery method id
	// example: bank
	DeliveryMethod string `json:"delivery_method"`
}

// QuoteResponse represents a priced transfer
// swagger:model QuoteResponse
type QuoteResponse struct {
	FromCurrency         string   `json:"from_currency" example:"USD"`
	ToCurrency           string   `json:"to_currency" example:"MXN"`
	Rate                 float64  `json:"rate" example:"20.38"`
	BoostMultiplier      float64  `json:"boost_multiplier" example:"1.1815"`
	SendAmount           float64  `json:"send_amount" example:"100"`
	Fee                  float64  `json:"fee" example:"0.99"`
	FeeLabel             string   `json:"fee_label" example:"$0.99"`
	TotalToPay           float64  `json:"total_to_pay" example:"100.99"`
	RegularReceiveAmount float64  `json:"regular_receive_amount" example:"2038"`
	BoostedReceiveAmount float64  `json:"boosted_receive_amount" example:"2407.897"`
	ExtraAmount          int64    `json:"extra_amount" example:"370"`
	DeliveryMethod       string   `json:"delivery_method" example:"bank"`
	PaymentMethod        string   `json:"payment_method" example:"debit"`
	Warnings             []string `json:"warnings,omitempty"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid request
	Error string `json:"error"`
}
