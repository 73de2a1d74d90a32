package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rsvp is a user's reservation on an event. One row per (user, event),
// enforced by the unique constraint and the upsert write path.
type Rsvp struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	EventID     uuid.UUID  `db:"event_id" json:"event_id"`
	Status      string     `db:"status" json:"status"`
	EmailSent   bool       `db:"email_sent" json:"email_sent"`
	EmailSentAt *time.Time `db:"email_sent_at" json:"email_sent_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// RsvpDetails joins the RSVP with the attendee and event rows the email
// worker needs. Event fields are nullable: the reservation may outlive the
// event row, and the worker falls back to placeholders rather than failing.
type RsvpDetails struct {
	Rsvp
	UserEmail      string     `db:"user_email"`
	UserFullName   string     `db:"user_full_name"`
	EventTitle     *string    `db:"event_title"`
	EventLocation  *string    `db:"event_location"`
	EventDesc      *string    `db:"event_description"`
	EventStartTime *time.Time `db:"event_start_time"`
	EventEndTime   *time.Time `db:"event_end_time"`
}

// EventRsvp is an RSVP joined with its attendee, for the admin roster of a
// single event.
type EventRsvp struct {
	Rsvp
	UserEmail    string `db:"user_email"`
	UserFullName string `db:"user_full_name"`
}

// UserRsvp is an RSVP joined with its event summary, for listing a user's
// reservations.
type UserRsvp struct {
	Rsvp
	EventTitle     *string    `db:"event_title"`
	EventLocation  *string    `db:"event_location"`
	EventStartTime *time.Time `db:"event_start_time"`
	EventStatus    *string    `db:"event_status"`
}
