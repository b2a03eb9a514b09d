package dto

import "github.com/13132klain/ufa-backend/internal/models"

type RegistrationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// RegistrationResult is what the public registration form gets back. Success
// does not distinguish which storage tier persisted the record.
type RegistrationResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	ConfirmationCode string `json:"confirmationCode,omitempty"`
	RegistrationID   string `json:"registrationId,omitempty"`
}

type RegistrationStatusUpdate struct {
	Status models.RegistrationStatus `json:"status"`
}
