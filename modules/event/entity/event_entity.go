package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus represents the review status of an event
type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

// Event is a campus event. EndTime is nil when the organizer gave no
// explicit end; consumers assume the default duration.
type Event struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Title       string      `db:"title" json:"title"`
	Slug        string      `db:"slug" json:"slug"`
	Description string      `db:"description" json:"description"`
	Location    string      `db:"location" json:"location"`
	Category    string      `db:"category" json:"category"`
	Points      int         `db:"points" json:"points"`
	Capacity    int         `db:"capacity" json:"capacity"` // 0 = unlimited
	StartTime   time.Time   `db:"start_time" json:"start_time"`
	EndTime     *time.Time  `db:"end_time" json:"end_time,omitempty"`
	Status      EventStatus `db:"status" json:"status"`
	CreatorID   uuid.UUID   `db:"creator_id" json:"creator_id"`
	ReviewerID  *uuid.UUID  `db:"reviewer_id" json:"reviewer_id,omitempty"`
	ReviewNotes *string     `db:"review_notes" json:"review_notes,omitempty"`
	ReviewedAt  *time.Time  `db:"reviewed_at" json:"reviewed_at,omitempty"`
	CheckinCode string      `db:"checkin_code" json:"-"`
	PosterKey   *string     `db:"poster_key" json:"poster_key,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// EventStats is the admin dashboard aggregate.
type EventStats struct {
	PendingEvents  int `db:"pending_events" json:"pending_events"`
	ApprovedEvents int `db:"approved_events" json:"approved_events"`
	RejectedEvents int `db:"rejected_events" json:"rejected_events"`
	TotalRsvps     int `db:"total_rsvps" json:"total_rsvps"`
	TotalCheckins  int `db:"total_checkins" json:"total_checkins"`
	TotalAttended  int `db:"total_attended" json:"total_attended"`
}
