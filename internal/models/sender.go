package models

import (
	"time"

	"github.com/google/uuid"
)

// SenderDB represents a sender profile row in the database
type SenderDB struct {
	SenderID   uuid.UUID `json:"sender_id" db:"sender_id"`     // Primary key
	FirstName  string    `json:"first_name" db:"first_name"`   // Legal first name
	MiddleName string    `json:"middle_name" db:"middle_name"` // Optional middle name
	LastName   string    `json:"last_name" db:"last_name"`     // Legal last name
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// OnboardingRequest represents the JSON body of the name step
// swagger:model OnboardingRequest
type OnboardingRequest struct {
	// First name as it appears on the ID
	// required: true
	// example: Leela
	FirstName string `json:"first_name"`

	// Middle name (optional)
	// example: Maria
	MiddleName string `json:"middle_name"`

	// Last name as it appears on the ID
	// required: true
	// example: Delphine
	LastName string `json:"last_name"`
}

// OnboardingResponse represents a created sender with its token
// swagger:model OnboardingResponse
type OnboardingResponse struct {
	// Sender identifier
	SenderID string `json:"sender_id" example:"6f1c3c8e-4a52-4d1f-9a38-1b2f3f0f8a11"`

	// JWT token for the sender
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// SenderResponse represents the signed-in sender's profile
// swagger:model SenderResponse
type SenderResponse struct {
	SenderID    string `json:"sender_id" example:"6f1c3c8e-4a52-4d1f-9a38-1b2f3f0f8a11"`
	FirstName   string `json:"first_name" example:"Leela"`
	MiddleName  string `json:"middle_name,omitempty" example:"Maria"`
	LastName    string `json:"last_name" example:"Delphine"`
	DisplayName string `json:"display_name" example:"Leela Delphine"`
}
