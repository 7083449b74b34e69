package catalog

import "github.com/shopspring/decimal"

// DeliveryMethod is how the recipient obtains the funds.
type DeliveryMethod struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ETA         string          `json:"eta"`
	Fee         decimal.Decimal `json:"fee"`
}

// PaymentMethod is how the sender funds the transfer. Only methods already
// connected to the account are selectable; the rest are onboarding offers.
type PaymentMethod struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Description string          `json:"description"`
	Fee         decimal.Decimal `json:"fee"`
	Selectable  bool            `json:"selectable"`
}

// PaymentMethodGroups mirrors the two sections of the payment sheet.
type PaymentMethodGroups struct {
	Existing []PaymentMethod `json:"existing"`
	Other    []PaymentMethod `json:"other"`
}

const (
	DefaultDeliveryMethod = "bank"
	DefaultPaymentMethod  = "debit"
)

var cardFee = decimal.RequireFromString("0.99")

var deliveryMethods = []DeliveryMethod{
	{ID: "bank", Title: "Bank Transfer", Description: "Direct to their bank account", ETA: "1-2 business days", Fee: decimal.Zero},
	{ID: "cash", Title: "Cash Pickup", Description: "Collect at 15,000+ locations", ETA: "Ready in minutes", Fee: decimal.Zero},
}

var existingPaymentMethods = []PaymentMethod{
	{ID: "chase", Title: "Chase", Subtitle: "USD · CHASE SAVINGS", Description: "Connected bank account", Fee: decimal.Zero, Selectable: true},
	{ID: "rusd", Title: "RUSD", Subtitle: "Remitly Stablecoin", Description: "Available balance: $25.00", Fee: decimal.Zero, Selectable: true},
	{ID: "debit", Title: "Debit Card", Subtitle: "****4234", Description: "Expires 12/25", Fee: cardFee, Selectable: true},
}

var otherPaymentMethods = []PaymentMethod{
	{ID: "new-bank", Title: "Connect new bank account", Description: "Connect bank account to add money quickly", Fee: decimal.Zero},
	{ID: "bank-transfer", Title: "Regular bank transfer", Description: "Transfer from your other bank", Fee: decimal.Zero},
	{ID: "apple-pay", Title: "Apple Pay", Description: "Pay with Apple Pay", Fee: cardFee},
	{ID: "new-debit", Title: "Add debit card", Description: "Add a new debit card", Fee: cardFee},
	{ID: "cash", Title: "Add cash", Description: "At one of our 90k+ locations", Fee: decimal.Zero},
	{ID: "direct-deposit", Title: "Direct deposit", Description: "Get paid up to two days early", Fee: decimal.Zero},
}

// DeliveryMethods returns the delivery catalog.
func DeliveryMethods() []DeliveryMethod {
	return append([]DeliveryMethod(nil), deliveryMethods...)
}

// FindDeliveryMethod looks a delivery method up by id.
func FindDeliveryMethod(id string) (DeliveryMethod, bool) {
	for _, m := range deliveryMethods {
		if m.ID == id {
			return m, true
		}
	}
	return DeliveryMethod{}, false
}

// DeliveryMethodOrDefault resolves id, falling back to the first entry.
func DeliveryMethodOrDefault(id string) DeliveryMethod {
	if m, ok := FindDeliveryMethod(id); ok {
		return m
	}
	return deliveryMethods[0]
}

// PaymentMethods returns both payment groups.
func PaymentMethods() PaymentMethodGroups {
	return PaymentMethodGroups{
		Existing: append([]PaymentMethod(nil), existingPaymentMethods...),
		Other:    append([]PaymentMethod(nil), otherPaymentMethods...),
	}
}

// FindPaymentMethod looks a selectable payment method up by id.
func FindPaymentMethod(id string) (PaymentMethod, bool) {
	for _, m := range existingPaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// PaymentMethodOrDefault resolves id, falling back to the first selectable entry.
func PaymentMethodOrDefault(id string) PaymentMethod {
	if m, ok := FindPaymentMethod(id); ok {
		return m
	}
	return existingPaymentMethods[0]
}

// PaymentFee is the flat fee of a selectable method; anything else is free.
func PaymentFee(id string) decimal.Decimal {
	if m, ok := FindPaymentMethod(id); ok {
		return m.Fee
	}
	return decimal.Zero
}

// FeeLabel renders a fee the way the summary panel shows it.
func FeeLabel(fee decimal.Decimal) string {
	if fee.IsZero() {
		return "Free"
	}
	return "$" + fee.StringFixed(2)
}

var recommendedAmounts = []int64{100, 500, 1000, 2000}

// RecommendedAmounts are the quick-pick send amounts shared by the
// calculator and the promo widget.
func RecommendedAmounts() []int64 {
	return append([]int64(nil), recommendedAmounts...)
}
