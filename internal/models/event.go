package models

import "time"

type EventType string

const (
	EventRally      EventType = "rally"
	EventMeeting    EventType = "meeting"
	EventWebinar    EventType = "webinar"
	EventFundraiser EventType = "fundraiser"
)

type Event struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
	Location    string    `bson:"location" json:"location"`
	Type        EventType `bson:"type" json:"type"` // rally, meeting, webinar, fundraiser
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`

	RegistrationRequired bool `bson:"registration_required" json:"registrationRequired"`
	// DurationHours is nil when the organizer did not declare one; calendar
	// export assumes two hours in that case.
	DurationHours *float64 `bson:"duration_hours,omitempty" json:"duration,omitempty"`

	CreatedAt *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
