package models

// PromoResponse represents the home-screen boost widget
// swagger:model PromoResponse
type PromoResponse struct {
	Title           string   `json:"title" example:"Send 100 USD"`
	Options         []int64  `json:"options"`
	SelectedAmount  int64    `json:"selected_amount" example:"100"`
	FromCurrency    string   `json:"from_currency" example:"USD"`
	ToCurrency      string   `json:"to_currency" example:"MXN"`
	RegularAmount   float64  `json:"regular_amount" example:"2038"`
	BoostedAmount   float64  `json:"boosted_amount" example:"2407.897"`
	ExtraAmount     int64    `json:"extra_amount" example:"370"`
	BonusDigits     []string `json:"bonus_digits"`
	BoostMultiplier float64  `json:"boost_multiplier" example:"1.1815"`
	CalculatorLink  string   `json:"calculator_link" example:"/calculator?amount=100"`
	Warnings        []string `json:"warnings,omitempty"`
}
