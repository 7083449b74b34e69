package models

import (
	"time"

	"github.com/google/uuid"
)

// RecipientDB represents a recipient row in the database
type RecipientDB struct {
	RecipientID     uuid.UUID `json:"recipient_id" db:"recipient_id"`         // Primary key
	SenderID        uuid.UUID `json:"sender_id" db:"sender_id"`               // Owner of the list
	Name            string    `json:"name" db:"name"`                         // Display name
	AccountNumber   string    `json:"account_number" db:"account_number"`     // Masked account or method summary
	Initials        string    `json:"initials" db:"initials"`                 // Avatar fallback
	DeliveryMethods string    `json:"delivery_methods" db:"delivery_methods"` // multiple, bank or cash
	Country         string    `json:"country" db:"country"`                   // ISO country, lower case
	IsSelf          bool      `json:"is_self" db:"is_self"`                   // Sender's own entry
	CreatedAt       time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
}

// RecipientResponse represents one row of the recipients screen
// swagger:model RecipientResponse
type RecipientResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name" example:"Rohan Singh"`
	AccountNumber   string `json:"account_number" example:"Account •••• 1234"`
	Initials        string `json:"initials" example:"RS"`
	DeliveryMethods string `json:"delivery_methods" example:"bank"`
	Country         string `json:"country" example:"in"`
	IsSelf          bool   `json:"is_self" example:"false"`
}

// RecipientsResponse lists recipients
// swagger:model RecipientsResponse
type RecipientsResponse struct {
	Recipients []RecipientResponse `json:"recipients"`
}

// CreateRecipientRequest represents the JSON body for adding a recipient
// swagger:model CreateRecipientRequest
type CreateRecipientRequest struct {
	// required: true
	// example: Maria Lopez
	Name string `json:"name"`

	// example: Account •••• 9876
	AccountNumber string `json:"account_number"`

	// bank, cash or multiple
	// example: bank
	DeliveryMethods string `json:"delivery_methods"`

	// example: mx
	Country string `json:"country"`
}
