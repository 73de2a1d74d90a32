package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attendance tracks one user's presence at one event. CheckedInAt keeps the
// first scan; AttendedAt is set once the post-event survey is completed.
type Attendance struct {
	UserID            uuid.UUID  `db:"user_id" json:"user_id"`
	EventID           uuid.UUID  `db:"event_id" json:"event_id"`
	CheckedInAt       *time.Time `db:"checked_in_at" json:"checked_in_at,omitempty"`
	AttendedAt        *time.Time `db:"attended_at" json:"attended_at,omitempty"`
	SurveyRating      *int       `db:"survey_rating" json:"survey_rating,omitempty"`
	SurveyFeedback    *string    `db:"survey_feedback" json:"survey_feedback,omitempty"`
	SurveyImprovement *string    `db:"survey_improvement" json:"survey_improvement,omitempty"`
	SurveySubmittedAt *time.Time `db:"survey_submitted_at" json:"survey_submitted_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// RosterEntry is one attendee row on the admin roster: the reservation plus
// whatever attendance state exists for it.
type RosterEntry struct {
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Username    string     `db:"username" json:"username"`
	FullName    string     `db:"full_name" json:"full_name"`
	Email       string     `db:"email" json:"email"`
	RsvpedAt    time.Time  `db:"rsvped_at" json:"rsvped_at"`
	CheckedInAt *time.Time `db:"checked_in_at" json:"checked_in_at,omitempty"`
	AttendedAt  *time.Time `db:"attended_at" json:"attended_at,omitempty"`
}
