package models

// TransferIntent is the event published when a sender confirms a quote.
type TransferIntent struct {
	IntentID             string  `json:"intent_id"`              // ULID, sortable by creation time
	SenderID             string  `json:"sender_id"`              // Sender confirming the transfer
	RecipientID          string  `json:"recipient_id"`           // Chosen recipient
	FromCurrency         string  `json:"from_currency"`          // Send currency
	ToCurrency           string  `json:"to_currency"`            // Receive currency
	Rate                 string  `json:"rate"`                   // Exact rate as a decimal string
	RateFallback         bool    `json:"rate_fallback"`          // Rate was priced at parity
	SendAmount           string  `json:"send_amount"`            // Exact send amount
	Fee                  string  `json:"fee"`                    // Flat payment fee
	TotalToPay           string  `json:"total_to_pay"`           // Send amount plus fee
	RegularReceiveAmount string  `json:"regular_receive_amount"` // Amount at the regular rate
	BoostedReceiveAmount string  `json:"boosted_receive_amount"` // Amount after the boost
	ExtraAmount          int64   `json:"extra_amount"`           // Rounded boost uplift
	DeliveryMethod       string  `json:"delivery_method"`        // Delivery method id
	PaymentMethod        string  `json:"payment_method"`         // Payment method id
	Timestamp            int64   `json:"timestamp"`              // Unix seconds
	BoostMultiplier      float64 `json:"boost_multiplier"`       // Multiplier in effect
}

// TransferRequest represents the JSON body for confirming a transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Recipient identifier
	// required: true
	RecipientID string `json:"recipient_id"`

	// Calculator inputs to price
	Quote QuoteRequest `json:"quote"`
}

// TransferResponse represents an accepted transfer intent
// swagger:model TransferResponse
type TransferResponse struct {
	// example: Transfer submitted
	Message string `json:"message"`

	// example: 01J9ZQ4X3W6Y7V2K8M5N4P3R2S
	IntentID string `json:"intent_id"`

	Quote QuoteResponse `json:"quote"`
}
