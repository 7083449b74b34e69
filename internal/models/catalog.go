package models

// CurrencyResponse represents one entry of the currency selector
// swagger:model CurrencyResponse
type CurrencyResponse struct {
	Code    string   `json:"code" example:"MXN"`
	Name    string   `json:"name" example:"Mexican Peso"`
	Symbol  string   `json:"symbol" example:"$"`
	Flag    string   `json:"flag"`
	Aliases []string `json:"aliases,omitempty"`
}

// CurrenciesResponse represents the currency selector
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// DeliveryMethodResponse represents a delivery option
// swagger:model DeliveryMethodResponse
type DeliveryMethodResponse struct {
	ID          string  `json:"id" example:"bank"`
	Title       string  `json:"title" example:"Bank Transfer"`
	Description string  `json:"description" example:"Direct to their bank account"`
	ETA         string  `json:"eta" example:"1-2 business days"`
	Fee         float64 `json:"fee" example:"0"`
}

// DeliveryMethodsResponse lists delivery options
// swagger:model DeliveryMethodsResponse
type DeliveryMethodsResponse struct {
	DeliveryMethods []DeliveryMethodResponse `json:"delivery_methods"`
}

// PaymentMethodResponse represents a payment option
// swagger:model PaymentMethodResponse
type PaymentMethodResponse struct {
	ID          string  `json:"id" example:"debit"`
	Title       string  `json:"title" example:"Debit Card"`
	Subtitle    string  `json:"subtitle,omitempty" example:"****4234"`
	Description string  `json:"description" example:"Expires 12/25"`
	Fee         float64 `json:"fee" example:"0.99"`
	FeeLabel    string  `json:"fee_label" example:"$0.99"`
	Selectable  bool    `json:"selectable" example:"true"`
}

// PaymentMethodsResponse lists payment options in their two groups
// swagger:model PaymentMethodsResponse
type PaymentMethodsResponse struct {
	Existing []PaymentMethodResponse `json:"existing"`
	Other    []PaymentMethodResponse `json:"other"`
}
