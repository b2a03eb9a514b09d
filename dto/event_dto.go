package dto

import (
	"time"

	"github.com/13132klain/ufa-backend/internal/models"
)

type EventRequest struct {
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Date                 time.Time        `json:"date"`
	Location             string           `json:"location"`
	Type                 models.EventType `json:"type"`
	Image                string           `json:"image,omitempty"`
	RegistrationRequired bool             `json:"registrationRequired"`
	DurationHours        *float64         `json:"duration,omitempty"`
}

// EventUpdate carries a partial edit; nil fields are left untouched.
type EventUpdate struct {
	Title                *string           `json:"title,omitempty"`
	Description          *string           `json:"description,omitempty"`
	Date                 *time.Time        `json:"date,omitempty"`
	Location             *string           `json:"location,omitempty"`
	Type                 *models.EventType `json:"type,omitempty"`
	Image                *string           `json:"image,omitempty"`
	RegistrationRequired *bool             `json:"registrationRequired,omitempty"`
	DurationHours        *float64          `json:"duration,omitempty"`
}
