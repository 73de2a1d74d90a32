package dto

import (
	"time"

	"campus-pulse/modules/rsvp/entity"

	"github.com/google/uuid"
)

// ===================== Response DTOs =====================

type RsvpResponse struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	Status    string    `json:"status"`
	EmailSent bool      `json:"email_sent"`
	CreatedAt time.Time `json:"created_at"`
}

// RsvpStatusResponse answers "am I going, and did the confirmation go out".
type RsvpStatusResponse struct {
	Going     bool       `json:"going"`
	EmailSent bool       `json:"email_sent"`
	RsvpedAt  *time.Time `json:"rsvped_at,omitempty"`
}

type MyRsvpResponse struct {
	ID             uuid.UUID  `json:"id"`
	EventID        uuid.UUID  `json:"event_id"`
	EventTitle     string     `json:"event_title"`
	EventLocation  string     `json:"event_location,omitempty"`
	EventStartTime *time.Time `json:"event_start_time,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

type PaginatedMyRsvpResponse struct {
	Items      []MyRsvpResponse `json:"items"`
	TotalItems int              `json:"total_items"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
}

type EventRsvpResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	UserFullName string    `json:"user_full_name"`
	Status       string    `json:"status"`
	EmailSent    bool      `json:"email_sent"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaginatedEventRsvpResponse struct {
	Items      []EventRsvpResponse `json:"items"`
	TotalItems int                 `json:"total_items"`
	PageNumber int                 `json:"page_number"`
	PageSize   int                 `json:"page_size"`
}

// ===================== Mapper Functions =====================

func ToRsvpResponse(r *entity.Rsvp) *RsvpResponse {
	return &RsvpResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		Status:    r.Status,
		EmailSent: r.EmailSent,
		CreatedAt: r.CreatedAt,
	}
}

func ToEventRsvpResponse(r *entity.EventRsvp) EventRsvpResponse {
	return EventRsvpResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		UserEmail:    r.UserEmail,
		UserFullName: r.UserFullName,
		Status:       r.Status,
		EmailSent:    r.EmailSent,
		CreatedAt:    r.CreatedAt,
	}
}

// ToMyRsvpResponse tolerates a deleted event behind the reservation: the
// title falls back to a placeholder instead of dropping the row.
func ToMyRsvpResponse(r *entity.UserRsvp) MyRsvpResponse {
	resp := MyRsvpResponse{
		ID:         r.ID,
		EventID:    r.EventID,
		EventTitle: "Unknown event",
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}

	if r.EventTitle != nil {
		resp.EventTitle = *r.EventTitle
	}
	if r.EventLocation != nil {
		resp.EventLocation = *r.EventLocation
	}
	resp.EventStartTime = r.EventStartTime

	return resp
}
