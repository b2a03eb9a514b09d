package models

import "time"

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type EventRegistration struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	EventID string `bson:"event_id" json:"eventId"`
	// EventTitle is a denormalized copy taken at registration time so
	// exports and confirmations survive event edits.
	EventTitle string `bson:"event_title" json:"eventTitle"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`

	RegistrationDate time.Time          `bson:"registration_date" json:"registrationDate"`
	Status           RegistrationStatus `bson:"status" json:"status"` // pending, confirmed, cancelled
	ConfirmationCode string             `bson:"confirmation_code" json:"confirmationCode"`

	CheckedIn   bool       `bson:"checked_in" json:"checkedIn"`
	CheckedInAt *time.Time `bson:"checked_in_at,omitempty" json:"checkedInAt,omitempty"`
}
